package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCommand(t *testing.T) {
	cmd := NewCommand([]string{"mysql", "-h", "mysql", "-e", "SELECT 1"})

	assert.Equal(t, "mysql", cmd.Name)
	assert.Equal(t, []string{"-h", "mysql", "-e", "SELECT 1"}, cmd.Args)
}

func TestNewCommandWithoutArgs(t *testing.T) {
	cmd := NewCommand([]string{"apache2-foreground"})

	assert.Equal(t, "apache2-foreground", cmd.Name)
	assert.Empty(t, cmd.Args)
}

func TestCommandString(t *testing.T) {
	cmd := Command{Name: "chown", Args: []string{"-R", "www-data:www-data", "/var/www/htdocs"}}

	assert.Equal(t, "chown -R www-data:www-data /var/www/htdocs", cmd.String())
}

func TestShellRunnerOutput(t *testing.T) {
	out, err := ShellRunner{}.Output(NewCommand([]string{"echo", "hello"}))

	require.NoError(t, err)
	assert.Equal(t, "hello", out)
}

func TestShellRunnerExitCode(t *testing.T) {
	code, err := ShellRunner{}.ExitCode(NewCommand([]string{"false"}))

	require.NoError(t, err)
	assert.Equal(t, 1, code)
}

func TestShellRunnerExitCodeUnknownCommand(t *testing.T) {
	_, err := ShellRunner{}.ExitCode(NewCommand([]string{"definitely-not-a-command"}))

	assert.Error(t, err)
}
