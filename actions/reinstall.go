package actions

import (
	"fmt"
	"webup/mageinit/db"
	"webup/mageinit/domain"

	"github.com/Songmu/prompter"
	"github.com/fatih/color"
	"github.com/juju/clock"
)

// ReinstallActionHandler drops the target database and runs the bootstrap
// again, as if the container booted on a fresh volume. Unless forced, the
// drop must be confirmed interactively.
func ReinstallActionHandler(cfg domain.InstallerConfig, client db.Client, runner domain.Runner, clk clock.Clock, force bool) int {

	if !force {
		ok := prompter.YN(fmt.Sprintf("This will DROP the database '%s' and reinstall Magento. Continue?", cfg.DatabaseName), false)
		if !ok {
			fmt.Println("Aborted.")
			return 0
		}
	}

	fmt.Printf("\n %s Dropping the database '%s'...\n", color.YellowString("▶"), cfg.DatabaseName)

	if err := db.WaitReady(client, clk); err != nil {
		fmt.Printf(" %s %v\n", color.RedString("✗"), err)
		return 1
	}

	if err := client.DropDatabase(cfg.DatabaseName); err != nil {
		fmt.Printf(" %s %v\n", color.RedString("✗"), err)
		return ExitSetupFailed
	}

	return BootstrapActionHandler(cfg, client, runner, clk)
}
