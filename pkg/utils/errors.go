// ===== pkg/utils/errors.go =====
package utils

import (
	"fmt"
	"log"
)

// CheckWarn logs err as a warning; it reports whether there was one
func CheckWarn(err error, context string) bool {
	if err == nil {
		return false
	}
	log.Printf("Warning - %s: %v", context, err)
	return true
}

// WrapError prefixes err with context, keeping it matchable by errors.Is
func WrapError(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}
