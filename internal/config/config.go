// ===== internal/config/config.go =====
package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/ini.v1"
)

// Config holds all application configuration
type Config struct {
	// File paths
	LeasesFile string
	MACDBFile  string

	// Network settings
	HTTPListen string

	// Feature flags
	MACDBPreload bool
	Watch        bool
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		LeasesFile:   "/var/lib/dhcp/dhcpd.leases",
		MACDBFile:    "",
		HTTPListen:   "127.0.0.1:8068",
		MACDBPreload: false,
		Watch:        true,
	}
}

// LoadFromFile loads configuration from INI file
func (c *Config) LoadFromFile(filename string) error {
	cfg, err := ini.LoadSources(ini.LoadOptions{Insensitive: true}, filename)
	if err != nil {
		log.Printf("Skipping config file %s: %s", filename, err)
		return err
	}

	section := cfg.Section("")
	c.LeasesFile = section.Key("leasesfile").MustString(c.LeasesFile)
	c.MACDBFile = section.Key("macdbfile").MustString(c.MACDBFile)
	c.HTTPListen = section.Key("httplisten").MustString(c.HTTPListen)
	c.MACDBPreload = section.Key("macdbpreload").MustBool(c.MACDBPreload)
	c.Watch = section.Key("watch").MustBool(c.Watch)

	return nil
}

// LoadFromEnv loads configuration from environment variables
func (c *Config) LoadFromEnv() {
	if v := os.Getenv("LEASESFILE"); v != "" {
		c.LeasesFile = v
	}
	if v := os.Getenv("MACDBFILE"); v != "" {
		c.MACDBFile = v
	}
	if v := os.Getenv("HTTPLISTEN"); v != "" {
		c.HTTPListen = v
	}
	if v := os.Getenv("MACDBPRELOAD"); v != "" {
		c.MACDBPreload, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("WATCH"); v != "" {
		c.Watch, _ = strconv.ParseBool(v)
	}
}

// New creates a new configuration instance. A missing config file is not
// an error; defaults and environment still apply.
func New(configFile string) (*Config, error) {
	cfg := DefaultConfig()

	// Load from file first
	if configFile != "" {
		cfg.LoadFromFile(configFile)
	}

	// Override with environment variables
	cfg.LoadFromEnv()

	return cfg, nil
}
