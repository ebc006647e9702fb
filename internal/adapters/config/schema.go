package config

// Wcwfile represents the structure of the .wcw.yaml configuration file.
type Wcwfile struct {
	Version       string       `yaml:"version"`
	Store         string       `yaml:"store"`
	Concurrency   int          `yaml:"concurrency"`
	FailurePolicy string       `yaml:"failure_policy"`
	Stager        StagerDTO    `yaml:"stager"`
	VCS           VCSDTO       `yaml:"vcs"`
	Log           LogDTO       `yaml:"log"`
	Telemetry     TelemetryDTO `yaml:"telemetry"`
}

// StagerDTO configures the package stager process.
type StagerDTO struct {
	Command string   `yaml:"command"`
	Args    []string `yaml:"args"`
}

// VCSDTO configures the version control provider.
type VCSDTO struct {
	Command    string `yaml:"command"`
	Remote     string `yaml:"remote"`
	Branch     string `yaml:"branch"`
	StashLabel string `yaml:"stash_label"`
}

// LogDTO configures logging.
type LogDTO struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// TelemetryDTO configures tracing.
type TelemetryDTO struct {
	Enabled bool `yaml:"enabled"`
}
