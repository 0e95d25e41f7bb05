// ===== pkg/models/leases.go =====
package models

import "sort"

// Leases holds lease declarations in file order. An IP that was renewed
// appears once per declaration; the last one is the most recent.
type Leases []Lease

// Len returns the number of lease declarations
func (ls Leases) Len() int {
	return len(ls)
}

// ByLeased returns the most recent lease for ip
func (ls Leases) ByLeased(ip string) (Lease, bool) {
	for i := len(ls) - 1; i >= 0; i-- {
		if ls[i].IP == ip {
			return ls[i], true
		}
	}
	return Lease{}, false
}

// ByLeasedAll returns every lease for ip in file order
func (ls Leases) ByLeasedAll(ip string) Leases {
	var result Leases
	for _, l := range ls {
		if l.IP == ip {
			result = append(result, l)
		}
	}
	return result
}

// ByMAC returns the most recent lease whose hardware address is mac
func (ls Leases) ByMAC(mac string) (Lease, bool) {
	for i := len(ls) - 1; i >= 0; i-- {
		if ls[i].Hardware != nil && ls[i].Hardware.MAC == mac {
			return ls[i], true
		}
	}
	return Lease{}, false
}

// ByMACAll returns every lease with hardware address mac in file order
func (ls Leases) ByMACAll(mac string) Leases {
	var result Leases
	for _, l := range ls {
		if l.Hardware != nil && l.Hardware.MAC == mac {
			result = append(result, l)
		}
	}
	return result
}

// ActiveAt returns the leases whose window contains when
func (ls Leases) ActiveAt(when Date) Leases {
	var result Leases
	for _, l := range ls {
		if l.IsActiveAt(when) {
			result = append(result, l)
		}
	}
	return result
}

// Hostnames returns the distinct hostnames, sorted
func (ls Leases) Hostnames() []string {
	return distinct(ls, func(l Lease) string { return l.Hostname })
}

// ClientHostnames returns the distinct client hostnames, sorted
func (ls Leases) ClientHostnames() []string {
	return distinct(ls, func(l Lease) string { return l.ClientHostname })
}

func distinct(ls Leases, field func(Lease) string) []string {
	seen := make(map[string]struct{})
	result := []string{}
	for _, l := range ls {
		v := field(l)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	sort.Strings(result)
	return result
}
