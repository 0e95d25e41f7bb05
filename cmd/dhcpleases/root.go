// ===== cmd/dhcpleases/root.go =====
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dhcpleases/internal/config"
	"dhcpleases/internal/dhcp"
	"dhcpleases/pkg/models"
	"dhcpleases/pkg/utils"
)

const defaultConfigFile = "dhcpleases.ini"

var (
	cfgFile    string
	leasesFile string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "dhcpleases",
	Short:         "Query an ISC dhcpd lease database",
	Long:          `Parse dhcpd.leases and answer which lease an IP or MAC address holds or held at a given time.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.New(cfgFile)
		if err != nil {
			return utils.WrapError(err, "failed to load configuration")
		}
		if leasesFile != "" {
			cfg.LeasesFile = leasesFile
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", defaultConfigFile, "INI configuration file")
	rootCmd.PersistentFlags().StringVar(&leasesFile, "leases", "", "lease file (overrides configuration)")

	rootCmd.AddCommand(serveCmd, queryCmd, hostnamesCmd)
}

// loadLeases parses the configured lease file once
func loadLeases() (models.Leases, error) {
	content, err := os.ReadFile(cfg.LeasesFile)
	if err != nil {
		return nil, utils.WrapError(err, "failed to read leases file")
	}

	leases, err := dhcp.ParseLeases(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", cfg.LeasesFile, err)
	}
	return leases, nil
}
