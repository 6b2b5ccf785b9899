package celestial

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// mustHex parses a #rrggbb literal from the class table, panics on a malformed entry
func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("celestial: bad color %q: %v", s, err))
	}
	return c
}
