package actions

import (
	"fmt"
	"strings"
	"webup/mageinit/domain"
)

// EnvActionHandler prints the resolved configuration, for debugging the
// container wiring. The password is masked.
func EnvActionHandler(cfg domain.InstallerConfig) {
	password := "(none)"
	if cfg.DatabasePassword != "" {
		password = strings.Repeat("*", len(cfg.DatabasePassword))
	}

	fmt.Println("Resolved configuration:")
	fmt.Printf("   db host:            %s\n", cfg.DatabaseHost)
	fmt.Printf("   db name:            %s\n", cfg.DatabaseName)
	fmt.Printf("   db user:            %s\n", cfg.DatabaseUser)
	fmt.Printf("   db password:        %s\n", password)
	fmt.Printf("   base url:           %s\n", cfg.BaseURL)
	fmt.Printf("   install folder:     %s\n", cfg.InstallFolder)
	fmt.Printf("   owner:              %s:%s\n", cfg.Owner, cfg.Group)
	fmt.Printf("   sample data folder: %s\n", cfg.SampleDataFolder)
	fmt.Printf("   delete sample data: %t\n", cfg.DeleteSampleData)
}
