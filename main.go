package main

import (
	"fmt"
	"os"
	"webup/mageinit/actions"
	"webup/mageinit/config"
	"webup/mageinit/db"
	"webup/mageinit/domain"

	"github.com/jawher/mow.cli"
	"github.com/juju/clock"
)

func main() {

	app := cli.App("mageinit", "First-boot bootstrapper for Magento containers")

	app.Version("v version", "Mageinit 1 (build 2)")

	var cfg domain.InstallerConfig
	runner := domain.ShellRunner{}

	app.Before = func() {
		resolved, err := config.Resolve()
		if err != nil {
			fmt.Println(err)
			cli.Exit(1)
		}
		cfg = resolved
	}

	// default action: run the bootstrap, then hand off to the given command.
	// On a reused data volume the bootstrap is a no-op and the command runs
	// right away.
	app.Spec = "[CMD...]"
	cmdArgs := app.StringsArg("CMD", nil, "Command to run once the installation is done (e.g. apache2-foreground)")

	app.Action = func() {
		client := db.NewClient(cfg, runner)

		code := actions.BootstrapActionHandler(cfg, client, runner, clock.WallClock)
		if code != 0 {
			cli.Exit(code)
		}

		cli.Exit(actions.ExecActionHandler(runner, *cmdArgs))
	}

	app.Command("backup", "Dump the database into a .tar.gz archive", func(cmd *cli.Cmd) {

		output := cmd.StringOpt("o output", "", "Filename of the backup archive")

		cmd.Action = func() {
			client := db.NewClient(cfg, runner)

			if err := actions.BackupActionHandler(cfg, client, output); err != nil {
				fmt.Println(err)
				cli.Exit(1)
			}
		}
	})

	app.Command("reinstall", "Drop the database and run the installation again", func(cmd *cli.Cmd) {

		forced := cmd.BoolOpt("f force", false, "Skip the confirmation prompt")

		cmd.Spec = "[-f] [CMD...]"
		reinstallCmdArgs := cmd.StringsArg("CMD", nil, "Command to run once the installation is done")

		cmd.Action = func() {
			client := db.NewClient(cfg, runner)

			code := actions.ReinstallActionHandler(cfg, client, runner, clock.WallClock, *forced)
			if code != 0 {
				cli.Exit(code)
			}

			cli.Exit(actions.ExecActionHandler(runner, *reinstallCmdArgs))
		}
	})

	app.Command("fix-permissions", "Give the installation folder to the configured owner", func(cmd *cli.Cmd) {
		cmd.Action = func() {
			if err := actions.FixPermissionsActionHandler(cfg, runner); err != nil {
				fmt.Println(err)
				cli.Exit(1)
			}
		}
	})

	app.Command("env", "Print the resolved configuration", func(cmd *cli.Cmd) {
		cmd.Action = func() {
			actions.EnvActionHandler(cfg)
		}
	})

	app.Run(os.Args)
}
