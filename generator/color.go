package generator

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// mustHex parses a palette constant, panics on a malformed entry
func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("generator: bad palette color %q: %v", s, err))
	}
	return c
}
