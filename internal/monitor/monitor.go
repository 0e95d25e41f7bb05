// ===== internal/monitor/monitor.go =====
package monitor

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"dhcpleases/internal/config"
	"dhcpleases/internal/dhcp"
	"dhcpleases/pkg/models"
	"dhcpleases/pkg/utils"
)

// Monitor keeps the parsed contents of the lease file current
type Monitor struct {
	cfg *config.Config

	leases   models.Leases
	loadedAt time.Time
	lastErr  error

	watcher  *fsnotify.Watcher
	mu       sync.RWMutex
	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// New creates a new monitor instance
func New(cfg *config.Config) *Monitor {
	return &Monitor{
		cfg:    cfg,
		leases: models.Leases{},
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
}

// Start loads the lease file and, if configured, begins watching it.
// A failed initial load is logged, not returned.
func (m *Monitor) Start() error {
	if err := m.Reload(); err != nil {
		log.Printf("Warning: failed to load DHCP leases: %v", err)
	}

	if !m.cfg.Watch {
		return nil
	}

	var err error
	m.watcher, err = fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	// dhcpd replaces the file by renaming a temporary copy over it, so the
	// directory is watched rather than the file itself
	dir := filepath.Dir(m.cfg.LeasesFile)
	if err := m.watcher.Add(dir); err != nil {
		m.watcher.Close()
		m.watcher = nil
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	go m.watchFiles()
	return nil
}

// watchFiles reloads the leases whenever the lease file changes
func (m *Monitor) watchFiles() {
	defer close(m.doneCh)

	absLeasesPath, _ := filepath.Abs(m.cfg.LeasesFile)

	for {
		select {
		case event, ok := <-m.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			absEventPath, _ := filepath.Abs(event.Name)
			if absEventPath != absLeasesPath {
				continue
			}

			log.Printf("File modified: %s", event.Name)
			if err := m.Reload(); err != nil {
				log.Printf("Error reloading DHCP leases: %v", err)
			}

		case err, ok := <-m.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("File watcher error: %v", err)

		case <-m.stopCh:
			return
		}
	}
}

// Stop stops monitoring. Calls after the first do nothing.
func (m *Monitor) Stop() {
	m.stopOnce.Do(func() {
		close(m.stopCh)
		if m.watcher != nil {
			m.watcher.Close()
			<-m.doneCh
		}
	})
}

// Reload parses the lease file again. On failure the previous leases are
// kept.
func (m *Monitor) Reload() error {
	content, err := os.ReadFile(m.cfg.LeasesFile)
	if err != nil {
		err = utils.WrapError(err, "failed to read leases file")
		m.setError(err)
		return err
	}

	leases, err := dhcp.ParseLeases(string(content))
	if err != nil {
		err = utils.WrapError(err, "failed to parse leases")
		m.setError(err)
		return err
	}

	m.mu.Lock()
	m.leases = leases
	m.loadedAt = time.Now()
	m.lastErr = nil
	m.mu.Unlock()

	log.Printf("Loaded %d DHCP leases from %s", len(leases), m.cfg.LeasesFile)
	return nil
}

func (m *Monitor) setError(err error) {
	m.mu.Lock()
	m.lastErr = err
	m.mu.Unlock()
}

// Leases returns the current snapshot. It is shared and must not be
// modified.
func (m *Monitor) Leases() models.Leases {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.leases
}

// Status reports when the leases were last loaded and the error of the
// latest attempt, if it failed
func (m *Monitor) Status() (time.Time, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loadedAt, m.lastErr
}
