package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"webup/mageinit/domain"

	"gopkg.in/yaml.v3"
)

const defaultConfigPath = "/etc/mageinit.yml"

// fileConfig is the optional YAML override file. Every key is optional;
// environment variables win over the file.
type fileConfig struct {
	DbHost           *string `yaml:"db_host"`
	DbName           *string `yaml:"db_name"`
	DbUser           *string `yaml:"db_user"`
	DbPassword       *string `yaml:"db_password"`
	BaseURL          *string `yaml:"base_url"`
	InstallFolder    *string `yaml:"install_folder"`
	Owner            *string `yaml:"owner"`
	Group            *string `yaml:"group"`
	SampleDataFolder *string `yaml:"sample_data_folder"`
	KeepSampleData   *bool   `yaml:"keep_sample_data"`
}

// Resolve builds the installer configuration: hardcoded defaults, overridden
// by the optional config file, overridden by the environment.
func Resolve() (domain.InstallerConfig, error) {
	cfg := domain.InstallerConfig{
		DatabaseHost:     "mysql",
		DatabaseUser:     "root",
		InstallFolder:    "/var/www/htdocs",
		Owner:            "www-data",
		Group:            "www-data",
		SampleDataFolder: filepath.Join(os.Getenv("HOME"), "_magento_sample_data"),
		DeleteSampleData: true,
	}

	if err := applyFile(&cfg); err != nil {
		return cfg, err
	}
	applyEnv(&cfg)

	// the database name is never empty: without an explicit override, it is
	// derived from the Magento version
	if cfg.DatabaseName == "" {
		cfg.DatabaseName = databaseNameForVersion(os.Getenv("MAGENTO_VERSION"))
	}

	return cfg, nil
}

func applyFile(cfg *domain.InstallerConfig) error {
	path := os.Getenv("MAGEINIT_CONFIG")
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath
	}

	content, err := os.ReadFile(path)
	if err != nil {
		// the default config file is optional
		if os.IsNotExist(err) && !explicit {
			return nil
		}
		return fmt.Errorf("unable to read the config file '%s': %w", path, err)
	}

	var parsed fileConfig
	if err := yaml.Unmarshal(content, &parsed); err != nil {
		return fmt.Errorf("unable to parse the config file '%s': %w", path, err)
	}

	if parsed.DbHost != nil {
		cfg.DatabaseHost = *parsed.DbHost
	}
	if parsed.DbName != nil {
		cfg.DatabaseName = *parsed.DbName
	}
	if parsed.DbUser != nil {
		cfg.DatabaseUser = *parsed.DbUser
	}
	if parsed.DbPassword != nil {
		cfg.DatabasePassword = *parsed.DbPassword
	}
	if parsed.BaseURL != nil {
		cfg.BaseURL = *parsed.BaseURL
	}
	if parsed.InstallFolder != nil {
		cfg.InstallFolder = *parsed.InstallFolder
	}
	if parsed.Owner != nil {
		cfg.Owner = *parsed.Owner
	}
	if parsed.Group != nil {
		cfg.Group = *parsed.Group
	}
	if parsed.SampleDataFolder != nil {
		cfg.SampleDataFolder = *parsed.SampleDataFolder
	}
	if parsed.KeepSampleData != nil {
		cfg.DeleteSampleData = !*parsed.KeepSampleData
	}

	return nil
}

func applyEnv(cfg *domain.InstallerConfig) {
	if name := os.Getenv("MYSQL_DATABASE"); name != "" {
		cfg.DatabaseName = name
	}
	if user := os.Getenv("MYSQL_USER"); user != "" {
		cfg.DatabaseUser = user
	}
	if password := os.Getenv("MYSQL_PASSWORD"); password != "" {
		cfg.DatabasePassword = password
	} else if password := os.Getenv("MYSQL_ROOT_PASSWORD"); password != "" {
		cfg.DatabasePassword = password
	}
	if baseURL := os.Getenv("BASE_URL"); baseURL != "" {
		cfg.BaseURL = baseURL
	}
}

func databaseNameForVersion(version string) string {
	if version == "" {
		return "magento"
	}
	return "magento_" + strings.ReplaceAll(version, ".", "_")
}
