package player

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonboulle/clockwork"
	"golang.org/x/text/unicode/norm"
)

const (
	teamTokenLen   = 10
	playerTokenLen = 8
	// folioSequence is the fixed middle segment of every folio.
	folioSequence = "001"
)

// FolioGenerator builds registration folios of the form
// <team>-001-<firstName>-<ordinal>.
type FolioGenerator struct {
	clock clockwork.Clock
}

// NewFolioGenerator creates a generator whose collision fallback reads clock.
func NewFolioGenerator(clock clockwork.Clock) *FolioGenerator {
	return &FolioGenerator{clock: clock}
}

// Folio returns the folio for the ordinal-th registration of a team.
func (g *FolioGenerator) Folio(teamName, firstName string, ordinal int) string {
	return assembleFolio(teamName, firstName, fmt.Sprintf("%03d", ordinal))
}

// Fallback returns a folio with a nanosecond timestamp in place of the
// ordinal, used once after a collision.
func (g *FolioGenerator) Fallback(teamName, firstName string) string {
	return assembleFolio(teamName, firstName, fmt.Sprintf("%d", g.clock.Now().UnixNano()))
}

// For binds the generator to one registration.
func (g *FolioGenerator) For(teamName, firstName string) FolioFunc {
	return func(ordinal int, retry bool) string {
		if retry {
			return g.Fallback(teamName, firstName)
		}
		return g.Folio(teamName, firstName, ordinal)
	}
}

func assembleFolio(teamName, firstName, suffix string) string {
	return strings.Join([]string{
		folioToken(teamName, teamTokenLen),
		folioSequence,
		folioToken(firstName, playerTokenLen),
		suffix,
	}, "-")
}

// folioToken strips whitespace, NFC-normalises and keeps at most max runes.
// Case is preserved.
func folioToken(s string, max int) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, norm.NFC.String(s))

	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}
