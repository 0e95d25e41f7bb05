// ===== internal/mac/database.go =====
package mac

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"

	"dhcpleases/pkg/models"
)

const unknownKey = "UNKNOWN"

// Database resolves the vendor of a lease hardware address from a
// JSON-lines OUI file. A nil *Database is valid and knows nothing.
type Database struct {
	cache     map[string]*models.OUIEntry
	file      *os.File
	mu        sync.RWMutex
	fileMu    sync.Mutex
	preloaded bool
}

// NewDatabase opens filename and optionally reads it fully into memory
func NewDatabase(filename string, preload bool) (*Database, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open MAC database: %w", err)
	}

	db := &Database{
		cache: make(map[string]*models.OUIEntry),
		file:  file,
	}
	db.initializeDefaults()

	if preload {
		if err := db.preloadDatabase(); err != nil {
			log.Printf("Warning: failed to preload MAC database: %v", err)
		}
	}

	return db, nil
}

// initializeDefaults sets up the entries for unknown and locally
// administered addresses
func (db *Database) initializeDefaults() {
	db.cache[unknownKey] = &models.OUIEntry{
		OUI:     "00:00:00:00:00:00",
		Company: "UNKNOWN",
		Address: "UNKNOWN",
	}
}

// privateEntry is returned for addresses with the locally administered bit
var privateEntry = &models.OUIEntry{
	Private: true,
	Company: "Local/Privacy MAC",
	Address: "UNKNOWN",
}

// preloadDatabase loads all OUI entries into memory
func (db *Database) preloadDatabase() error {
	count := 0
	err := db.scan(func(prefix string, entry *models.OUIEntry) bool {
		db.mu.Lock()
		db.cache[prefix] = entry
		db.mu.Unlock()
		count++
		return true
	})

	db.mu.Lock()
	db.preloaded = true
	db.mu.Unlock()

	log.Printf("Preloaded %d MAC entries", count)
	return err
}

// Lookup finds vendor information for mac as written in a hardware
// statement. Unparseable addresses resolve to the unknown entry.
func (db *Database) Lookup(mac string) *models.OUIEntry {
	if db == nil || mac == "" {
		return nil
	}
	mac = strings.ToUpper(mac)

	db.mu.RLock()
	for i := len(mac); i > 0; i-- {
		if entry, ok := db.cache[mac[:i]]; ok {
			db.mu.RUnlock()
			return entry
		}
	}
	preloaded := db.preloaded
	unknown := db.cache[unknownKey]
	db.mu.RUnlock()

	if isPrivate(mac) {
		return privateEntry
	}
	if preloaded {
		return unknown
	}

	if entry := db.searchFile(mac); entry != nil {
		return entry
	}
	return unknown
}

// isPrivate checks the locally administered bit of the first octet
func isPrivate(mac string) bool {
	if len(mac) < 2 {
		return false
	}
	switch mac[1] {
	case '2', '6', 'A', 'E':
		return true
	}
	return false
}

// searchFile scans the database file for the prefix of mac and caches it
func (db *Database) searchFile(mac string) *models.OUIEntry {
	var found *models.OUIEntry
	err := db.scan(func(prefix string, entry *models.OUIEntry) bool {
		if !strings.HasPrefix(mac, prefix) {
			return true
		}
		db.mu.Lock()
		db.cache[prefix] = entry
		db.mu.Unlock()
		found = entry
		return false
	})
	if err != nil {
		log.Printf("Warning: MAC database search failed: %v", err)
	}
	return found
}

// scan calls fn for every well-formed line until fn returns false
func (db *Database) scan(fn func(prefix string, entry *models.OUIEntry) bool) error {
	db.fileMu.Lock()
	defer db.fileMu.Unlock()

	if _, err := db.file.Seek(0, io.SeekStart); err != nil {
		return err
	}

	scanner := bufio.NewScanner(db.file)
	for scanner.Scan() {
		var entry models.OUIEntry
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil || entry.OUI == "" {
			continue
		}
		if !fn(strings.ToUpper(entry.OUI), &entry) {
			break
		}
	}
	return scanner.Err()
}

// Close closes the database file
func (db *Database) Close() error {
	if db != nil && db.file != nil {
		return db.file.Close()
	}
	return nil
}
