package installer

import (
	"fmt"
	"strings"
	"webup/mageinit/domain"
)

const magerunBin = "n98-magerun"

// commands run after a successful installation, in order; the first failure
// aborts the sequence
var postInstallCommands = []domain.CommandArgs{
	{"cache:disable"},
}

// Magerun drives the n98-magerun installer CLI.
type Magerun struct {
	Config domain.InstallerConfig
	Runner domain.Runner
}

// Install runs the non-interactive Magento installation against the
// configured database. The installer works from the pre-staged sources in
// the installation folder and never downloads anything.
func (m Magerun) Install() error {
	if m.Config.BaseURL == "" {
		return fmt.Errorf("no base URL configured: set BASE_URL to the URL the shop will be served on")
	}

	args := domain.InstallerArgs{
		domain.KeyValueArg("dbHost", m.Config.DatabaseHost),
		domain.KeyValueArg("dbUser", m.Config.DatabaseUser),
		domain.KeyValueArg("dbPass", m.Config.DatabasePassword),
		domain.KeyValueArg("dbName", m.Config.DatabaseName),
		domain.KeyValueArg("installationFolder", m.Config.InstallFolder),
		domain.KeyValueArg("baseUrl", m.Config.BaseURL),
		domain.KeyValueArg("useDefaultConfigParams", "yes"),
		domain.FlagArg("noDownload"),
		domain.FlagArg("forceUseDb"),
		domain.PositionalArg("-n"),
	}

	cmdArgs := append([]string{magerunBin, "install"}, args.Render()...)
	if err := m.Runner.Run(domain.NewCommand(cmdArgs)); err != nil {
		return fmt.Errorf("the installer failed: %w", err)
	}
	return nil
}

// EnableSymlinks turns on template symlinks for the installed shop. This is
// a convenience toggle: a failure is logged and never fails the bootstrap.
func (m Magerun) EnableSymlinks() {
	cmd := m.magerunCommand("dev:symlinks", "--global", "--on")
	if err := m.Runner.Run(cmd); err != nil {
		fmt.Printf("WARN: unable to enable template symlinks: %v\n", err)
	}
}

// PostInstall runs the post-installation configuration commands.
func (m Magerun) PostInstall() error {
	for _, args := range postInstallCommands {
		if err := m.Runner.Run(m.magerunCommand(args...)); err != nil {
			return fmt.Errorf("post-install command '%s' failed: %w", strings.Join(args, " "), err)
		}
	}
	return nil
}

func (m Magerun) magerunCommand(args ...string) domain.Command {
	full := []string{"--root-dir=" + m.Config.InstallFolder, "-n"}
	full = append(full, args...)

	return domain.Command{Name: magerunBin, Args: full}
}
