package actions

import (
	"fmt"
	"webup/mageinit/domain"
)

// ExecActionHandler runs the command given after the program name and
// returns its exit code. With no arguments there is nothing to run and the
// handler reports success.
func ExecActionHandler(runner domain.Runner, args []string) int {
	if len(args) == 0 {
		return 0
	}

	code, err := runner.ExitCode(domain.NewCommand(args))
	if err != nil {
		fmt.Printf("Unable to run the command: %v\n", err)
		return 1
	}
	return code
}
