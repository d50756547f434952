// Package finder implements duplicate character detection.
package finder

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/rs/zerolog"
)

// ErrInvalidArgument reports input that is not valid text.
var ErrInvalidArgument = errors.New("invalid argument")

// Finder counts character occurrences and reports repeats.
type Finder struct {
	log zerolog.Logger
}

// New constructs a Finder that traces running counts through log at
// debug level.
func New(log zerolog.Logger) *Finder {
	return &Finder{log: log}
}

// FindDuplicates returns the non-whitespace characters that appear
// more than once in text, ordered by each character's first
// appearance. Whitespace runes are never counted. Case is
// significant. It fails with ErrInvalidArgument when text is not
// valid UTF-8, before any counting happens.
func (f *Finder) FindDuplicates(text string) ([]string, error) {
	if !utf8.ValidString(text) {
		return nil, fmt.Errorf("%w: input is not valid UTF-8 (first invalid byte at offset %d)", ErrInvalidArgument, invalidOffset(text))
	}

	histogram := make(map[rune]int)
	var order []rune
	for _, ch := range text {
		if unicode.IsSpace(ch) {
			continue
		}
		if histogram[ch] == 0 {
			order = append(order, ch)
		}
		histogram[ch]++
		f.log.Debug().Str("char", string(ch)).Int("count", histogram[ch]).Msg("count")
	}

	var duplicates []string
	for _, ch := range order {
		if histogram[ch] > 1 {
			duplicates = append(duplicates, string(ch))
		}
	}
	return duplicates, nil
}

func invalidOffset(text string) int {
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}
