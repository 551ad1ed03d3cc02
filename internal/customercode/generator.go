package customercode

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"tms/internal/port"
)

// Generator proposes the next free customer code for a name. It does not
// reserve codes: two calls without an insert in between return the same
// candidate, and callers must treat a unique-index collision as a race and
// ask again.
type Generator struct {
	repo      port.CustomerCodeRepository
	maxLength int
}

// NewGenerator creates a Generator that abbreviates names to maxLength letters.
func NewGenerator(repo port.CustomerCodeRepository, maxLength int) *Generator {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}
	return &Generator{repo: repo, maxLength: maxLength}
}

// Prefix returns the abbreviation Next would use for name.
func (g *Generator) Prefix(name string) string {
	return Abbreviate(name, g.maxLength)
}

// Next returns prefix + zero-padded (highest existing sequence + 1).
func (g *Generator) Next(ctx context.Context, name string) (string, error) {
	prefix := g.Prefix(name)
	codes, err := g.repo.ListCodesByPrefix(ctx, prefix)
	if err != nil {
		return "", fmt.Errorf("customercode.Next: %w", err)
	}
	return Format(prefix, NextSequence(prefix, codes)), nil
}

// NextSequence returns one more than the highest numeric suffix among codes
// that are prefix followed only by digits, or 1 if there are none.
func NextSequence(prefix string, codes []string) int {
	highest := 0
	for _, code := range codes {
		rest, ok := strings.CutPrefix(code, prefix)
		if !ok || rest == "" || !allDigits(rest) {
			continue
		}
		n, err := strconv.Atoi(rest)
		if err != nil {
			continue
		}
		if n > highest {
			highest = n
		}
	}
	return highest + 1
}

// Format renders a code as prefix plus an at-least-three-digit sequence.
func Format(prefix string, seq int) string {
	return fmt.Sprintf("%s%03d", prefix, seq)
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
