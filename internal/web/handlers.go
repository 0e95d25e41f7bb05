// ===== internal/web/handlers.go =====
package web

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"dhcpleases/pkg/models"
)

// LeaseJSON represents a lease in API responses
type LeaseJSON struct {
	IP             string           `json:"ip"`
	Starts         string           `json:"starts,omitempty"`
	Ends           string           `json:"ends,omitempty"`
	HardwareType   string           `json:"hardwareType,omitempty"`
	MAC            string           `json:"mac,omitempty"`
	Info           *models.OUIEntry `json:"info,omitempty"`
	UID            string           `json:"uid,omitempty"`
	ClientHostname string           `json:"clientHostname,omitempty"`
	Hostname       string           `json:"hostname,omitempty"`
	Abandoned      bool             `json:"abandoned"`
	Active         bool             `json:"active"`
}

// handleHealth reports the state of the last load
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	loadedAt, err := s.source.Status()

	response := map[string]any{
		"status": "ok",
		"leases": s.source.Leases().Len(),
	}
	if !loadedAt.IsZero() {
		response["loadedAt"] = loadedAt.Format(time.RFC3339)
	}
	if err != nil {
		response["status"] = "degraded"
		response["error"] = err.Error()
	}
	writeJSON(w, http.StatusOK, response)
}

// handleLeases lists all leases, or those active at ?active=
func (s *Server) handleLeases(w http.ResponseWriter, r *http.Request) {
	leases := s.source.Leases()

	if raw := strings.TrimSpace(r.URL.Query().Get("active")); raw != "" {
		when, err := parseWhen(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_active", "active must be 'now' or an RFC 3339 timestamp")
			return
		}
		leases = leases.ActiveAt(when)
	}

	s.writeLeases(w, leases)
}

// handleLeasesByIP returns the most recent lease for an IP, or its history
// with ?all=true
func (s *Server) handleLeasesByIP(w http.ResponseWriter, r *http.Request) {
	leases := s.source.Leases()
	ip := chi.URLParam(r, "ip")

	s.writeLookup(w, r,
		func() (models.Lease, bool) { return leases.ByLeased(ip) },
		func() models.Leases { return leases.ByLeasedAll(ip) },
	)
}

// handleLeasesByMAC is handleLeasesByIP keyed by hardware address
func (s *Server) handleLeasesByMAC(w http.ResponseWriter, r *http.Request) {
	leases := s.source.Leases()
	mac := chi.URLParam(r, "mac")

	s.writeLookup(w, r,
		func() (models.Lease, bool) { return leases.ByMAC(mac) },
		func() models.Leases { return leases.ByMACAll(mac) },
	)
}

func (s *Server) handleHostnames(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"data": s.source.Leases().Hostnames()})
}

func (s *Server) handleClientHostnames(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"data": s.source.Leases().ClientHostnames()})
}

func (s *Server) writeLookup(w http.ResponseWriter, r *http.Request, latest func() (models.Lease, bool), all func() models.Leases) {
	if raw := r.URL.Query().Get("all"); raw != "" {
		wantAll, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_all", "all must be true or false")
			return
		}
		if wantAll {
			history := all()
			if len(history) == 0 {
				writeError(w, http.StatusNotFound, "not_found", "no lease found")
				return
			}
			s.writeLeases(w, history)
			return
		}
	}

	lease, ok := latest()
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", "no lease found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": s.toJSON(lease, models.DateFromTime(time.Now()))})
}

func (s *Server) writeLeases(w http.ResponseWriter, leases models.Leases) {
	now := models.DateFromTime(time.Now())

	result := make([]LeaseJSON, len(leases))
	for i, lease := range leases {
		result[i] = s.toJSON(lease, now)
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": result})
}

func (s *Server) toJSON(lease models.Lease, now models.Date) LeaseJSON {
	out := LeaseJSON{
		IP:             lease.IP,
		UID:            lease.UID,
		ClientHostname: lease.ClientHostname,
		Hostname:       lease.Hostname,
		Abandoned:      lease.Abandoned,
		Active:         lease.IsActiveAt(now),
	}
	if lease.Dates.Starts != nil {
		out.Starts = lease.Dates.Starts.String()
	}
	if lease.Dates.Ends != nil {
		out.Ends = lease.Dates.Ends.String()
	}
	if lease.Hardware != nil {
		out.HardwareType = lease.Hardware.Type
		out.MAC = lease.Hardware.MAC
		if s.vendors != nil {
			out.Info = s.vendors.Lookup(lease.Hardware.MAC)
		}
	}
	return out
}

// parseWhen accepts "now" or an RFC 3339 timestamp, converted to UTC
func parseWhen(raw string) (models.Date, error) {
	if raw == "now" {
		return models.DateFromTime(time.Now()), nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return models.Date{}, err
	}
	return models.DateFromTime(t), nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Failed to encode JSON response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]any{
		"error": map[string]any{
			"code":    code,
			"message": message,
		},
	})
}
