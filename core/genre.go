package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownGenre is returned when a genre name cannot be parsed.
var ErrUnknownGenre = errors.New("unknown genre")

const otherGenrePrefix = "Other:"

// GenreKind enumerates the closed set of genres, with Other as the open case.
type GenreKind uint8

// The genre kinds.
const (
	Fiction GenreKind = iota
	Science
	History
	Manga
	Biography
	Other
)

var genreNames = map[GenreKind]string{
	Fiction:   "Fiction",
	Science:   "Science",
	History:   "History",
	Manga:     "Manga",
	Biography: "Biography",
	Other:     "Other",
}

// Genre is the genre of a book. Only the Other kind carries a free-text label.
type Genre struct {
	kind  GenreKind
	label string
}

// Predefined genres.
var (
	GenreFiction   = Genre{kind: Fiction}
	GenreScience   = Genre{kind: Science}
	GenreHistory   = Genre{kind: History}
	GenreManga     = Genre{kind: Manga}
	GenreBiography = Genre{kind: Biography}
)

// OtherGenre creates a genre outside the closed set.
func OtherGenre(label string) Genre {
	return Genre{kind: Other, label: label}
}

// Kind returns the genre kind.
func (g Genre) Kind() GenreKind {
	return g.kind
}

// Label returns the free-text label of an Other genre, empty for the closed set.
func (g Genre) Label() string {
	return g.label
}

// String returns the genre name, or the label for Other.
func (g Genre) String() string {
	if g.kind == Other {
		return g.label
	}

	return genreNames[g.kind]
}

// MarshalText encodes the genre as its name, or "Other:<label>".
func (g Genre) MarshalText() ([]byte, error) {
	if g.kind == Other {
		return []byte(otherGenrePrefix + g.label), nil
	}

	name, ok := genreNames[g.kind]
	if !ok {
		return nil, fmt.Errorf("%w: kind %d", ErrUnknownGenre, g.kind)
	}

	return []byte(name), nil
}

// UnmarshalText decodes the form written by MarshalText.
func (g *Genre) UnmarshalText(text []byte) error {
	parsed, err := ParseGenre(string(text))
	if err != nil {
		return err
	}

	*g = parsed

	return nil
}

// ParseGenre parses a genre name (case-insensitive) or the "Other:<label>" form.
func ParseGenre(s string) (Genre, error) {
	if label, ok := strings.CutPrefix(s, otherGenrePrefix); ok {
		return OtherGenre(label), nil
	}

	for kind, name := range genreNames {
		if kind != Other && strings.EqualFold(name, s) {
			return Genre{kind: kind}, nil
		}
	}

	return Genre{}, fmt.Errorf("%w: %q", ErrUnknownGenre, s)
}
