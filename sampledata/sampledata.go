package sampledata

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"webup/mageinit/db"
	"webup/mageinit/domain"
	"webup/mageinit/utils"
)

// Loader pre-populates a freshly created database and the installation
// folder from local sample-data archives. A sample-data archive is a .tar.gz
// bundle containing SQL dumps plus static application files.
type Loader struct {
	Config domain.InstallerConfig
	Client db.Client
}

// Load processes every archive of the sample-data folder: the archive is
// extracted in place, its SQL dumps are imported into the target database
// and removed, and everything else is copied into the installation folder.
// A missing folder or the absence of archives is not an error; Load reports
// whether any data was loaded.
func (l Loader) Load() (bool, error) {
	folder := l.Config.SampleDataFolder

	entries, err := os.ReadDir(folder)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Printf("No sample data folder at '%s'.\n", folder)
			return false, nil
		}
		return false, fmt.Errorf("unable to read the sample data folder '%s': %w", folder, err)
	}

	// deterministic processing order across container runs
	archives := []string{}
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(strings.ToLower(entry.Name()), ".tar.gz") {
			archives = append(archives, entry.Name())
		}
	}
	sort.Strings(archives)

	if len(archives) == 0 {
		fmt.Printf("No sample data archive found in '%s'.\n", folder)
		return false, nil
	}

	for _, archive := range archives {
		fmt.Printf(" → Extracting %s\n", archive)
		if err := extractArchive(folder, archive); err != nil {
			return false, err
		}

		if err := l.importSQLFiles(); err != nil {
			return false, err
		}
		if err := l.copyFiles(); err != nil {
			return false, err
		}
	}

	if l.Config.DeleteSampleData {
		fmt.Printf(" → Removing %s\n", folder)
		if err := os.RemoveAll(folder); err != nil {
			return false, fmt.Errorf("unable to remove the sample data folder: %w", err)
		}
	}

	return true, nil
}

// importSQLFiles imports every extracted .sql file into the target database.
// A file is removed only once its import succeeded; a failed import keeps
// the file on disk and aborts the whole step.
func (l Loader) importSQLFiles() error {
	sqlFiles := []string{}
	err := filepath.Walk(l.Config.SampleDataFolder, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && strings.HasSuffix(strings.ToLower(info.Name()), ".sql") {
			sqlFiles = append(sqlFiles, path)
		}
		return nil
	})
	if err != nil {
		return err
	}
	sort.Strings(sqlFiles)

	for _, path := range sqlFiles {
		fmt.Printf(" → Importing %s into '%s'\n", filepath.Base(path), l.Config.DatabaseName)
		if err := l.Client.ImportFile(l.Config.DatabaseName, path); err != nil {
			return err
		}
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("unable to remove the imported SQL file '%s': %w", path, err)
		}
	}

	return nil
}

// copyFiles copies everything extracted so far (the archives themselves
// excepted) into the installation folder, overwriting existing paths.
func (l Loader) copyFiles() error {
	entries, err := os.ReadDir(l.Config.SampleDataFolder)
	if err != nil {
		return err
	}

	names := []string{}
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(strings.ToLower(entry.Name()), ".tar.gz") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Printf(" → Copying %s to %s\n", name, l.Config.InstallFolder)
		src := filepath.Join(l.Config.SampleDataFolder, name)
		if err := utils.CopyAll(src, filepath.Join(l.Config.InstallFolder, name)); err != nil {
			return err
		}
	}

	return nil
}

func extractArchive(folder string, name string) error {
	reader, err := os.Open(filepath.Join(folder, name))
	if err != nil {
		return err
	}
	defer reader.Close()

	gzipReader, err := gzip.NewReader(reader)
	if err != nil {
		return fmt.Errorf("unable to read the archive '%s': %w", name, err)
	}
	defer gzipReader.Close()

	tarReader := tar.NewReader(gzipReader)

	for {
		header, err := tarReader.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			return fmt.Errorf("unable to read the archive '%s': %w", name, err)
		}

		// the archive must not write outside the sample data folder
		target := filepath.Join(folder, header.Name)
		if filepath.IsAbs(header.Name) || !strings.HasPrefix(target, filepath.Clean(folder)+string(os.PathSeparator)) {
			return fmt.Errorf("refusing to extract '%s' from '%s'", header.Name, name)
		}

		info := header.FileInfo()

		if info.IsDir() {
			if err := os.MkdirAll(target, 0755); err != nil {
				return err
			}
			continue
		}

		if err := writeFile(target, tarReader, info); err != nil {
			return err
		}
	}

	return nil
}

func writeFile(dest string, source io.Reader, sourceInfo os.FileInfo) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return err
	}

	file, err := os.OpenFile(dest, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, sourceInfo.Mode())
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = io.Copy(file, source)
	return err
}
