package db

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"webup/mageinit/domain"
)

// ErrNotReachable is reported when the mysql client cannot reach the server
// at all. Only this class of failure is retried by the readiness probe.
var ErrNotReachable = errors.New("database server not reachable")

// mysql client messages that mean "the server is not there (yet)"
var connectionErrorMarkers = []string{
	"error 2002",
	"error 2003",
	"error 2005",
	"can't connect",
	"unknown mysql server host",
	"connection refused",
}

// Client talks to the database server through the mysql command-line client.
// All operations except ImportFile and Dump connect without selecting a
// database, since the target database may not exist yet.
type Client struct {
	Host     string
	User     string
	Password string

	Runner domain.Runner
}

// NewClient builds a client for the configured connection parameters.
func NewClient(cfg domain.InstallerConfig, runner domain.Runner) Client {
	return Client{
		Host:     cfg.DatabaseHost,
		User:     cfg.DatabaseUser,
		Password: cfg.DatabasePassword,
		Runner:   runner,
	}
}

// Ping checks that the server accepts a connection. A connection-class
// failure is reported as ErrNotReachable; any other failure is returned
// verbatim.
func (c Client) Ping() error {
	_, err := c.Runner.Output(c.queryCommand("", "SELECT 1"))
	if err == nil {
		return nil
	}
	if isConnectionError(err) {
		return fmt.Errorf("%w: %v", ErrNotReachable, err)
	}
	return err
}

// ListDatabases returns the names of the databases known to the server.
func (c Client) ListDatabases() ([]string, error) {
	out, err := c.Runner.Output(c.queryCommand("", "SHOW DATABASES"))
	if err != nil {
		return nil, fmt.Errorf("unable to list the databases: %w", err)
	}
	if out == "" {
		return nil, nil
	}
	return strings.Split(out, "\n"), nil
}

// DatabaseExists checks for the exact name in the server's database list.
// The match is case-sensitive.
func (c Client) DatabaseExists(name string) (bool, error) {
	databases, err := c.ListDatabases()
	if err != nil {
		return false, err
	}
	for _, database := range databases {
		if database == name {
			return true, nil
		}
	}
	return false, nil
}

// CreateDatabase creates the named database. The name is backtick-quoted but
// otherwise trusted: it comes from the container configuration, not from
// user input.
func (c Client) CreateDatabase(name string) error {
	_, err := c.Runner.Output(c.queryCommand("", fmt.Sprintf("CREATE DATABASE `%s`", name)))
	if err != nil {
		return fmt.Errorf("unable to create the database '%s': %w", name, err)
	}
	return nil
}

// DropDatabase removes the named database if it exists.
func (c Client) DropDatabase(name string) error {
	_, err := c.Runner.Output(c.queryCommand("", fmt.Sprintf("DROP DATABASE IF EXISTS `%s`", name)))
	if err != nil {
		return fmt.Errorf("unable to drop the database '%s': %w", name, err)
	}
	return nil
}

// ImportFile feeds a SQL file to the named database.
func (c Client) ImportFile(database string, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("unable to open the SQL file '%s': %w", path, err)
	}
	defer file.Close()

	args := c.connectionArgs()
	args = append(args, database)

	if err := c.Runner.RunWithStdin(domain.Command{Name: "mysql", Args: args}, file); err != nil {
		return fmt.Errorf("unable to import '%s' into '%s': %w", path, database, err)
	}
	return nil
}

// Dump writes a mysqldump of the named database to the given writer.
func (c Client) Dump(database string, out io.Writer) error {
	args := c.connectionArgs()
	args = append(args, database)

	if err := c.Runner.RunWithOutput(domain.Command{Name: "mysqldump", Args: args}, out); err != nil {
		return fmt.Errorf("unable to dump the database '%s': %w", database, err)
	}
	return nil
}

func (c Client) connectionArgs() []string {
	args := []string{"-h", c.Host, "-u", c.User}
	if c.Password != "" {
		args = append(args, "-p"+c.Password)
	}
	return args
}

func (c Client) queryCommand(database string, query string) domain.Command {
	args := c.connectionArgs()
	args = append(args, "--batch", "--skip-column-names")
	if database != "" {
		args = append(args, database)
	}
	args = append(args, "-e", query)

	return domain.Command{Name: "mysql", Args: args}
}

func isConnectionError(err error) bool {
	msg := strings.ToLower(err.Error())
	for _, marker := range connectionErrorMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
