package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default returns the built-in configuration for the PS5 payload SDK.
func Default() Config {
	return Config{
		InstallDir:         "/opt/ps5-payload-sdk",
		ArchiveURL:         "https://github.com/ps5-payload-dev/sdk/releases/latest/download/ps5-payload-sdk.zip",
		CacheFile:          "/tmp/ps5-payload-sdk.zip",
		RequiredExecutable: "bin/prospero-clang",
		BinDir:             "bin",
		Downloader:         "wget",
		Sudo:               "sudo",
		SDKEnvVar:          "PS5_PAYLOAD_SDK",
		HostEnvVar:         "PS5_HOST",
		PortEnvVar:         "PS5_PORT",
		DefaultHost:        "ps5",
		DefaultPort:        "9021",
		Packages: Packages{
			Debian: PackageSet{
				Update:     []string{"apt-get", "update"},
				Required:   []string{"apt-get", "install", "-y", "wget", "unzip", "clang", "lld"},
				Optional:   []string{"apt-get", "install", "-y", "cmake", "meson", "pkg-config"},
				Privileged: true,
			},
			Fedora: PackageSet{
				Update:     []string{"dnf", "makecache"},
				Required:   []string{"dnf", "install", "-y", "wget", "unzip", "clang", "lld"},
				Optional:   []string{"dnf", "install", "-y", "cmake", "meson", "pkgconf-pkg-config"},
				Privileged: true,
			},
			MacOS: PackageSet{
				Update:   []string{"brew", "update"},
				Required: []string{"brew", "install", "wget", "llvm"},
				Optional: []string{"brew", "install", "cmake", "meson", "pkg-config"},
			},
		},
	}
}

// LoadConfig returns the defaults overlaid with the YAML file at path.
// An empty path means "defaults only". A path that cannot be read or parsed is an error.
func LoadConfig(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	// Unmarshal onto the defaults so omitted keys keep their built-in values.
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects configurations the installer cannot act on.
func (c Config) Validate() error {
	switch {
	case c.InstallDir == "":
		return fmt.Errorf("install_dir must not be empty")
	case c.ArchiveURL == "":
		return fmt.Errorf("archive_url must not be empty")
	case c.CacheFile == "":
		return fmt.Errorf("cache_file must not be empty")
	case c.RequiredExecutable == "":
		return fmt.Errorf("required_executable must not be empty")
	case c.Downloader == "":
		return fmt.Errorf("downloader must not be empty")
	case c.SDKEnvVar == "" || c.HostEnvVar == "" || c.PortEnvVar == "":
		return fmt.Errorf("environment variable names must not be empty")
	}
	return nil
}
