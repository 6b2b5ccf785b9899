//go:build cosmosdebug

package navigation

// contractViolation fails fast in debug builds
func contractViolation(msg string) {
	panic(msg)
}
