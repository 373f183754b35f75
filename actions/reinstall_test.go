package actions

import (
	"errors"
	"strings"
	"testing"
	"time"
	"webup/mageinit/db"

	"github.com/juju/clock/testclock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The confirmation prompt reads the terminal, so only the forced path is
// exercised here; a declined prompt simply returns before any command runs.

func (r *fakeRunner) firstIndex(fragment string) int {
	for i, cmd := range r.commands {
		if strings.Contains(cmd.String(), fragment) {
			return i
		}
	}
	return -1
}

func TestReinstallForcedDropsAndReinstalls(t *testing.T) {
	cfg := testConfig(t)
	runner := &fakeRunner{databases: []string{"information_schema", "mysql"}}
	client := db.NewClient(cfg, runner)

	code := ReinstallActionHandler(cfg, client, runner, testclock.NewClock(time.Time{}), true)

	assert.Equal(t, 0, code)
	assert.True(t, runner.executed("DROP DATABASE IF EXISTS `shop`"))
	assert.True(t, runner.executed("n98-magerun install"))

	// the database is dropped before the installation re-runs
	dropIndex := runner.firstIndex("DROP DATABASE")
	installIndex := runner.firstIndex("n98-magerun install")
	require.NotEqual(t, -1, dropIndex)
	require.NotEqual(t, -1, installIndex)
	assert.Less(t, dropIndex, installIndex)
}

func TestReinstallUnreachableDatabase(t *testing.T) {
	cfg := testConfig(t)
	runner := &fakeRunner{
		pingErr: errors.New("ERROR 2003 (HY000): Can't connect to MySQL server on 'mysql' (111)"),
	}
	client := db.NewClient(cfg, runner)
	clk := testclock.NewClock(time.Time{})

	done := make(chan int, 1)
	go func() {
		done <- ReinstallActionHandler(cfg, client, runner, clk, true)
	}()

	delay := 1 * time.Second
	for i := 0; i < db.ProbeAttempts-1; i++ {
		require.NoError(t, clk.WaitAdvance(delay, 10*time.Second, 1))
		delay *= 2
	}

	select {
	case code := <-done:
		assert.Equal(t, 1, code)
	case <-time.After(10 * time.Second):
		t.Fatal("timed out waiting for the reinstall")
	}

	assert.False(t, runner.executed("DROP DATABASE"))
}

func TestReinstallDropFailure(t *testing.T) {
	cfg := testConfig(t)
	runner := &fakeRunner{
		databases: []string{"information_schema", "mysql", "shop"},
		dropErr:   errors.New("ERROR 1044 (42000): Access denied for user 'root'@'%' to database 'shop'"),
	}
	client := db.NewClient(cfg, runner)

	code := ReinstallActionHandler(cfg, client, runner, testclock.NewClock(time.Time{}), true)

	assert.Equal(t, ExitSetupFailed, code)
	assert.False(t, runner.executed("n98-magerun"))
}
