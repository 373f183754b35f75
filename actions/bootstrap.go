package actions

import (
	"fmt"
	"webup/mageinit/db"
	"webup/mageinit/domain"
	"webup/mageinit/installer"
	"webup/mageinit/sampledata"

	"github.com/fatih/color"
	"github.com/juju/clock"
)

// ExitSetupFailed distinguishes "the setup failed" from "the setup succeeded
// but the handoff command failed with its own exit code".
const ExitSetupFailed = 666

// BootstrapActionHandler runs the first-boot pipeline and returns the
// process exit code: 0 when the installation is complete (or was already
// done), 1 when the database never became reachable, ExitSetupFailed when
// any installation step failed.
//
// The presence of the target database is the single marker of a previous
// installation: when it exists, every step is skipped regardless of the
// filesystem state. This makes container restarts on a persistent data
// volume a no-op.
func BootstrapActionHandler(cfg domain.InstallerConfig, client db.Client, runner domain.Runner, clk clock.Clock) int {

	/*
	 * 1. Wait for the database server
	 */

	fmt.Printf("\n %s Waiting for the database on '%s'...\n", color.YellowString("▶"), cfg.DatabaseHost)

	if err := db.WaitReady(client, clk); err != nil {
		fmt.Printf(" %s %v\n", color.RedString("✗"), err)
		return 1
	}

	fmt.Printf(" %s Database server is up.\n", color.GreenString("✓"))

	/*
	 * 2. Create the database if needed
	 */

	fmt.Printf("\n %s Checking the database '%s'...\n", color.YellowString("▶"), cfg.DatabaseName)

	exists, err := client.DatabaseExists(cfg.DatabaseName)
	if err != nil {
		fmt.Printf(" %s %v\n", color.RedString("✗"), err)
		return ExitSetupFailed
	}

	if exists {
		fmt.Printf(" %s The database already exists: Magento is considered installed.\n", color.GreenString("✓"))
		return 0
	}

	if err := client.CreateDatabase(cfg.DatabaseName); err != nil {
		fmt.Printf(" %s %v\n", color.RedString("✗"), err)
		return ExitSetupFailed
	}
	fmt.Printf(" %s Database '%s' created.\n", color.GreenString("✓"), cfg.DatabaseName)

	/*
	 * 3. Load the sample data, if some is staged
	 */

	fmt.Printf("\n %s Loading sample data...\n", color.YellowString("▶"))

	loader := sampledata.Loader{Config: cfg, Client: client}
	loaded, err := loader.Load()
	if err != nil {
		fmt.Printf(" %s %v\n", color.RedString("✗"), err)
		return ExitSetupFailed
	}
	if loaded {
		fmt.Printf(" %s Sample data loaded.\n", color.GreenString("✓"))
	}

	/*
	 * 4. Install Magento
	 */

	fmt.Printf("\n %s Installing Magento...\n", color.YellowString("▶"))

	magerun := installer.Magerun{Config: cfg, Runner: runner}
	if err := magerun.Install(); err != nil {
		fmt.Printf(" %s %v\n", color.RedString("✗"), err)
		return ExitSetupFailed
	}

	magerun.EnableSymlinks()

	if err := magerun.PostInstall(); err != nil {
		fmt.Printf(" %s %v\n", color.RedString("✗"), err)
		return ExitSetupFailed
	}

	fmt.Printf("\n %s Magento is installed.\n", color.GreenString("✓"))

	return 0
}
