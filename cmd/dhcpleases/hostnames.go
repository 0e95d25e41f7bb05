// ===== cmd/dhcpleases/hostnames.go =====
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var hostnamesClient bool

var hostnamesCmd = &cobra.Command{
	Use:   "hostnames",
	Short: "List the distinct hostnames in the lease file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		leases, err := loadLeases()
		if err != nil {
			return err
		}

		names := leases.Hostnames()
		if hostnamesClient {
			names = leases.ClientHostnames()
		}
		for _, name := range names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

func init() {
	hostnamesCmd.Flags().BoolVar(&hostnamesClient, "client", false, "list client-hostname values instead")
}
