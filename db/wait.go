package db

import (
	"errors"
	"fmt"
	"time"

	"github.com/juju/clock"
	"github.com/juju/retry"
)

// ProbeAttempts is the number of connection attempts before giving up on the
// database server.
const ProbeAttempts = 10

// WaitReady blocks until the server accepts a connection. Connection
// failures are retried with a delay starting at one second and doubling
// after every failed attempt; any other failure stops the probe immediately.
func WaitReady(client Client, clk clock.Clock) error {
	err := retry.Call(retry.CallArgs{
		Func: client.Ping,
		IsFatalError: func(err error) bool {
			return !errors.Is(err, ErrNotReachable)
		},
		NotifyFunc: func(lastError error, attempt int) {
			fmt.Printf(" → attempt %d/%d: %v\n", attempt, ProbeAttempts, lastError)
		},
		Attempts:    ProbeAttempts,
		Delay:       1 * time.Second,
		BackoffFunc: retry.DoubleDelay,
		Clock:       clk,
	})

	if retry.IsAttemptsExceeded(err) {
		return fmt.Errorf("the database on '%s' never became reachable: %v", client.Host, retry.LastError(err))
	}
	return err
}
