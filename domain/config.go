package domain

// InstallerConfig is resolved once at startup and passed by value to every
// step of the bootstrap. No step reads the environment on its own.
type InstallerConfig struct {
	DatabaseHost     string
	DatabaseName     string
	DatabaseUser     string
	DatabasePassword string

	BaseURL       string
	InstallFolder string

	// Recorded for the fix-permissions action; the bootstrap itself does not
	// enforce ownership.
	Owner string
	Group string

	SampleDataFolder string
	DeleteSampleData bool
}
