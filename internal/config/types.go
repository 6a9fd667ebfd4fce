package config

// Config is the full set of values the installer works from.
// Every field has a built-in default (see Default); a YAML file may override any of them.
type Config struct {
	InstallDir         string `yaml:"install_dir"`         // Where the SDK lives, e.g. /opt/ps5-payload-sdk
	ArchiveURL         string `yaml:"archive_url"`         // Latest release archive
	CacheFile          string `yaml:"cache_file"`          // Download target, reused when present
	ArchiveSHA256      string `yaml:"archive_sha256"`      // Optional hex digest of the archive
	RequiredExecutable string `yaml:"required_executable"` // Relative to InstallDir
	BinDir             string `yaml:"bin_dir"`             // Relative to InstallDir, chmod'ed after install
	Downloader         string `yaml:"downloader"`          // External download tool
	Sudo               string `yaml:"sudo"`                // Elevation prefix; empty runs commands directly

	SDKEnvVar  string `yaml:"sdk_env_var"`
	HostEnvVar string `yaml:"host_env_var"`
	PortEnvVar string `yaml:"port_env_var"`

	DefaultHost string `yaml:"default_host"`
	DefaultPort string `yaml:"default_port"`

	Shell   string `yaml:"shell"`   // zsh or bash; detected from $SHELL when empty
	Profile string `yaml:"profile"` // Explicit profile path, wins over Shell

	Packages Packages `yaml:"packages"`
}

// Packages holds the literal package-manager command lines for each platform.
type Packages struct {
	Debian PackageSet `yaml:"debian"`
	Fedora PackageSet `yaml:"fedora"`
	MacOS  PackageSet `yaml:"macos"`
}

// PackageSet is the command sequence for one platform.
// - Update: refreshes the package index.
// - Required: must succeed or the run aborts.
// - Optional: best-effort build tools; failures only warn.
// - Privileged: prefix each command with the Sudo setting.
type PackageSet struct {
	Update     []string `yaml:"update"`
	Required   []string `yaml:"required"`
	Optional   []string `yaml:"optional"`
	Privileged bool     `yaml:"privileged"`
}
