// ===== cmd/dhcpleases/query.go =====
package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"dhcpleases/pkg/models"
)

var (
	queryIP  string
	queryMAC string
	queryAll bool
	queryAt  string
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Show the lease held by an IP or MAC address",
	Long: `Show the most recent lease for --ip or --mac, or every lease with --all.
With --at, only leases active at that time are shown. The time is written
as in the lease file ("2 2019/01/01 22:30:00") or "now".`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if (queryIP == "") == (queryMAC == "") {
			return fmt.Errorf("exactly one of --ip or --mac is required")
		}

		leases, err := loadLeases()
		if err != nil {
			return err
		}

		var result models.Leases
		switch {
		case queryIP != "" && queryAll:
			result = leases.ByLeasedAll(queryIP)
		case queryIP != "":
			if l, ok := leases.ByLeased(queryIP); ok {
				result = models.Leases{l}
			}
		case queryAll:
			result = leases.ByMACAll(queryMAC)
		default:
			if l, ok := leases.ByMAC(queryMAC); ok {
				result = models.Leases{l}
			}
		}

		if queryAt != "" {
			when, err := parseAt(queryAt)
			if err != nil {
				return err
			}
			result = result.ActiveAt(when)
		}

		if len(result) == 0 {
			return fmt.Errorf("no matching lease")
		}
		return printLeases(cmd.OutOrStdout(), result)
	},
}

func init() {
	queryCmd.Flags().StringVar(&queryIP, "ip", "", "leased IP address")
	queryCmd.Flags().StringVar(&queryMAC, "mac", "", "hardware address")
	queryCmd.Flags().BoolVar(&queryAll, "all", false, "show every lease, oldest first")
	queryCmd.Flags().StringVar(&queryAt, "at", "", `only leases active at this time ("now" or "<weekday> <yyyy/mm/dd> <hh:mm:ss>")`)
}

// parseAt reads a timestamp in lease file notation
func parseAt(value string) (models.Date, error) {
	if value == "now" {
		return models.DateFromTime(time.Now()), nil
	}

	fields := strings.Fields(value)
	if len(fields) != 3 {
		return models.Date{}, fmt.Errorf("--at: expected \"<weekday> <yyyy/mm/dd> <hh:mm:ss>\", got %q", value)
	}
	when, err := models.ParseDate(fields[0], fields[1], fields[2])
	if err != nil {
		return models.Date{}, fmt.Errorf("--at: %w", err)
	}
	return when, nil
}

func printLeases(out io.Writer, leases models.Leases) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "IP\tMAC\tSTARTS\tENDS\tHOSTNAME\tCLIENT HOSTNAME\tABANDONED")
	for _, l := range leases {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%t\n",
			l.IP,
			orDash(l.MAC()),
			dateOrDash(l.Dates.Starts),
			dateOrDash(l.Dates.Ends),
			orDash(l.Hostname),
			orDash(l.ClientHostname),
			l.Abandoned,
		)
	}
	return w.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func dateOrDash(d *models.Date) string {
	if d == nil {
		return "-"
	}
	return d.String()
}

