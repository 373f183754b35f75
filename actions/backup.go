package actions

import (
	"fmt"
	"os"
	"path"
	"time"
	"webup/mageinit/db"
	"webup/mageinit/domain"

	"github.com/fatih/color"
	"github.com/jhoonb/archivex"
)

// BackupActionHandler dumps the target database into a .tar.gz archive in
// the current directory.
func BackupActionHandler(cfg domain.InstallerConfig, client db.Client, outputOpt *string) error {

	// prepare the directory to store the backup
	backupDir := ".mageinit_backup"
	err := os.Mkdir(backupDir, os.ModePerm)
	if err != nil {
		return fmt.Errorf("unable to create a backup directory: %w", err)
	}
	defer os.RemoveAll(backupDir)

	dumpDir := path.Join(backupDir, "backup", "databases")
	if err := os.MkdirAll(dumpDir, 0755); err != nil {
		return fmt.Errorf("unable to create the db backup directory: %w", err)
	}

	fmt.Printf(" %s Dumping the database '%s'...\n", color.YellowString("▶"), cfg.DatabaseName)

	if err := makeDump(client, cfg.DatabaseName, dumpDir); err != nil {
		return err
	}

	tar := new(archivex.TarFile)
	tar.Create(path.Join(backupDir, "backup_archive.tar.gz"))
	tar.AddAll(path.Join(backupDir, "backup"), false)
	tar.Close()

	// save the archive with the right name
	archiveFilename := ""
	if outputOpt != nil && *outputOpt != "" {
		archiveFilename = *outputOpt
	} else {
		now := time.Now().UTC()
		year, month, day := now.Date()
		hour, minutes, seconds := now.Clock()
		archiveFilename = fmt.Sprintf("backup-%d%02d%02d_%02d%02d%02d.tar.gz", year, month, day, hour, minutes, seconds)
	}

	if err := os.Rename(path.Join(backupDir, "backup_archive.tar.gz"), archiveFilename); err != nil {
		return fmt.Errorf("unable to create the backup file: %w", err)
	}

	fmt.Printf("\n %s Done (%s)\n", color.GreenString("✓"), archiveFilename)
	return nil
}

func makeDump(client db.Client, database string, dumpDir string) error {
	file, err := os.CreateTemp(dumpDir, "mageinitdump")
	if err != nil {
		return fmt.Errorf("unable to create a tmp file: %w", err)
	}
	defer file.Close()

	if err := client.Dump(database, file); err != nil {
		os.Remove(file.Name())
		return err
	}

	return os.Rename(file.Name(), path.Join(dumpDir, database+".sql"))
}
