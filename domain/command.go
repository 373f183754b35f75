package domain

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

type CommandArgs []string

// Command is a typed invocation descriptor: a program name and its argument
// list. Arguments are passed to the process as-is, so no shell escaping is
// needed anywhere.
type Command struct {
	Name string
	Args []string
}

func (c Command) String() string {
	return strings.TrimSpace(fmt.Sprintf("%s %s", c.Name, strings.Join(c.Args, " ")))
}

func NewCommand(list []string) Command {
	name := list[0]
	args := list[1:]

	return Command{Name: name, Args: args}
}

// Runner executes commands. The bootstrapper talks to every external tool
// (mysql, mysqldump, n98-magerun, chown, the final handoff command) through
// this interface, so tests can substitute a recording fake.
type Runner interface {
	// Run executes the command with stdio wired to the current process.
	Run(cmd Command) error

	// Output executes the command and returns its trimmed stdout. On failure
	// the returned error carries the command's stderr output.
	Output(cmd Command) (string, error)

	// RunWithStdin executes the command feeding it the given reader.
	RunWithStdin(cmd Command, stdin io.Reader) error

	// RunWithOutput executes the command writing its stdout to the given writer.
	RunWithOutput(cmd Command, stdout io.Writer) error

	// ExitCode executes the command with stdio wired to the current process
	// and returns its exit code. The error is non-nil only when the command
	// could not be started at all.
	ExitCode(cmd Command) (int, error)
}

// ShellRunner runs commands on the host. Every command line is printed
// before execution.
type ShellRunner struct{}

func (r ShellRunner) Run(cmd Command) error {
	c := exec.Command(cmd.Name, cmd.Args...)
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	c.Stdin = os.Stdin

	fmt.Printf("Executing: %s\n", cmd)

	return c.Run()
}

func (r ShellRunner) Output(cmd Command) (string, error) {
	c := exec.Command(cmd.Name, cmd.Args...)

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	fmt.Printf("Executing: %s\n", cmd)

	if err := c.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("%s: %w", msg, err)
		}
		return "", err
	}

	return strings.TrimSpace(stdout.String()), nil
}

func (r ShellRunner) RunWithStdin(cmd Command, stdin io.Reader) error {
	c := exec.Command(cmd.Name, cmd.Args...)
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	c.Stdin = stdin

	fmt.Printf("Executing: %s\n", cmd)

	return c.Run()
}

func (r ShellRunner) RunWithOutput(cmd Command, stdout io.Writer) error {
	c := exec.Command(cmd.Name, cmd.Args...)
	c.Stdout = stdout
	c.Stderr = os.Stderr

	fmt.Printf("Executing: %s\n", cmd)

	return c.Run()
}

func (r ShellRunner) ExitCode(cmd Command) (int, error) {
	c := exec.Command(cmd.Name, cmd.Args...)
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	c.Stdin = os.Stdin

	fmt.Printf("Executing: %s\n", cmd)

	err := c.Run()
	if err == nil {
		return 0, nil
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		return exitErr.ExitCode(), nil
	}
	return 0, err
}
