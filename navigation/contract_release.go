//go:build !cosmosdebug

package navigation

import "log"

// contractViolation logs and lets the caller continue with its default
func contractViolation(msg string) {
	log.Print(msg)
}
