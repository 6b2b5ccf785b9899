package generator

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/vi-cosmos/vmath"
)

var syllables = []string{
	"an", "bel", "cor", "dra", "el", "fen", "gal", "hy", "ix", "ka",
	"lor", "mir", "nov", "or", "pra", "qua", "ry", "sol", "tar", "ul",
	"vex", "wen", "xi", "yor", "zan", "the", "ast", "ori",
}

var romanNumerals = []string{"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X"}

// catalogName builds a pronounceable root of 2-3 syllables from r
// Always consumes exactly four draws
func catalogName(r *vmath.FastRand) string {
	n := 2 + r.Intn(2)
	var sb strings.Builder
	for i := 0; i < 3; i++ {
		s := syllables[r.Intn(len(syllables))]
		if i < n {
			sb.WriteString(s)
		}
	}
	name := sb.String()
	return strings.ToUpper(name[:1]) + name[1:]
}

// roman returns the numeral for 1-based n, falling back to a letter past X
func roman(n int) string {
	if n >= 1 && n <= len(romanNumerals) {
		return romanNumerals[n-1]
	}
	return string(rune('A' + n - 1))
}

// Designation builds the display name of body i on demand
func (p *Population) Designation(i int) string {
	b := p.Body(i)
	if b == nil {
		return ""
	}
	switch p.Tier {
	case TierUniverse:
		if b.Kind == KindNebula {
			return fmt.Sprintf("%s NEB-%06d", p.Name, i)
		}
		return fmt.Sprintf("%s PGC-%06d", p.Name, i)
	case TierGalaxy:
		return fmt.Sprintf("%s %s-%05d", p.Name, b.Class, i)
	default:
		stars := p.starCount()
		if i < stars {
			if stars == 1 {
				return p.Name
			}
			return p.Name + " " + string(rune('A'+i))
		}
		return p.Name + " " + roman(i-stars+1)
	}
}
