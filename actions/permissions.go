package actions

import (
	"fmt"
	"webup/mageinit/domain"

	"github.com/fatih/color"
)

// FixPermissionsActionHandler gives the installation folder back to the
// configured filesystem owner. The bootstrap itself never changes ownership,
// so this is a separate command for images that need it.
func FixPermissionsActionHandler(cfg domain.InstallerConfig, runner domain.Runner) error {
	owner := fmt.Sprintf("%s:%s", cfg.Owner, cfg.Group)

	fmt.Printf(" %s Changing the owner of '%s' to %s...\n", color.YellowString("▶"), cfg.InstallFolder, owner)

	cmd := domain.NewCommand([]string{"chown", "-R", owner, cfg.InstallFolder})
	if err := runner.Run(cmd); err != nil {
		return fmt.Errorf("unable to change the owner of '%s': %w", cfg.InstallFolder, err)
	}

	fmt.Printf(" %s Done\n", color.GreenString("✓"))
	return nil
}
