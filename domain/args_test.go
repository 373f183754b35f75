package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderFlag(t *testing.T) {
	args := InstallerArgs{FlagArg("noDownload")}

	assert.Equal(t, []string{"--noDownload"}, args.Render())
}

func TestRenderKeyValue(t *testing.T) {
	args := InstallerArgs{KeyValueArg("dbHost", "mysql")}

	assert.Equal(t, []string{"--dbHost=mysql"}, args.Render())
}

func TestRenderPositional(t *testing.T) {
	args := InstallerArgs{PositionalArg("-n")}

	assert.Equal(t, []string{"-n"}, args.Render())
}

func TestRenderKeepsInsertionOrder(t *testing.T) {
	args := InstallerArgs{
		KeyValueArg("dbHost", "mysql"),
		KeyValueArg("baseUrl", "http://shop.local/"),
		FlagArg("noDownload"),
		PositionalArg("-n"),
	}

	expected := []string{"--dbHost=mysql", "--baseUrl=http://shop.local/", "--noDownload", "-n"}
	assert.Equal(t, expected, args.Render())
}
