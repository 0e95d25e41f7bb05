// ===== pkg/models/models.go =====
package models

// Hardware is the hardware statement of a lease. Neither field is validated.
type Hardware struct {
	Type string `json:"type"`
	MAC  string `json:"mac"`
}

// LeaseDates is the validity window of a lease; a nil side is unbounded
type LeaseDates struct {
	Starts *Date `json:"starts,omitempty"`
	Ends   *Date `json:"ends,omitempty"`
}

// Lease represents one lease declaration from dhcpd.leases.
// Empty strings mean the statement was absent.
type Lease struct {
	IP             string     `json:"ip"`
	Dates          LeaseDates `json:"dates"`
	Hardware       *Hardware  `json:"hardware,omitempty"`
	UID            string     `json:"uid,omitempty"`
	ClientHostname string     `json:"clientHostname,omitempty"`
	Hostname       string     `json:"hostname,omitempty"`
	Abandoned      bool       `json:"abandoned"`
}

// MAC returns the hardware address, or "" if the lease has none
func (l Lease) MAC() string {
	if l.Hardware == nil {
		return ""
	}
	return l.Hardware.MAC
}

// IsActiveAt reports whether when falls inside the lease window, bounds
// included
func (l Lease) IsActiveAt(when Date) bool {
	if l.Dates.Starts != nil && l.Dates.Starts.After(when) {
		return false
	}
	if l.Dates.Ends != nil && l.Dates.Ends.Before(when) {
		return false
	}
	return true
}

// OUIEntry represents MAC address vendor information
type OUIEntry struct {
	OUI         string `json:"oui"`
	Private     bool   `json:"isPrivate"`
	Company     string `json:"companyName"`
	Address     string `json:"companyAddress"`
	CountryCode string `json:"countryCode"`
	BlockSize   string `json:"assignmentBlockSize"`
	Created     string `json:"dateCreated"`
	Updated     string `json:"dateUpdated"`
}
