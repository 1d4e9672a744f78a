package maze

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

// ErrBadDelimiter is returned when WithDelimiter is given an unusable rune.
var ErrBadDelimiter = errors.New("maze: invalid delimiter")

// LoadOption configures Load and LoadFile.
type LoadOption func(*LoadOptions)

// LoadOptions holds loader settings.
type LoadOptions struct {
	// Delimiter separates cells on a line. Default ','.
	Delimiter rune
	// Comment, if non-zero, marks lines to ignore.
	Comment rune
}

// DefaultLoadOptions returns comma-separated input with no comment marker.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{Delimiter: ','}
}

// WithDelimiter sets the cell separator.
func WithDelimiter(r rune) LoadOption {
	return func(o *LoadOptions) {
		o.Delimiter = r
	}
}

// WithComment sets a line comment marker, e.g. ';'.
func WithComment(r rune) LoadOption {
	return func(o *LoadOptions) {
		o.Comment = r
	}
}

// Load reads a delimited table from r and parses it into a Grid.
// Cell symbols are kept verbatim, so a single space is an Open cell.
// Any read or parse failure wraps ErrMalformedGrid.
func Load(r io.Reader, opts ...LoadOption) (*Grid, error) {
	o := DefaultLoadOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !validDelim(o.Delimiter) || o.Delimiter == ' ' {
		return nil, fmt.Errorf("%w: %q", ErrBadDelimiter, o.Delimiter)
	}

	cr := csv.NewReader(r)
	cr.Comma = o.Delimiter
	cr.Comment = o.Comment
	cr.FieldsPerRecord = -1 // ragged rows are reported by Parse
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, &MalformedGridError{Row: -1, Err: err}
	}

	return Parse(records)
}

// LoadFile opens path and calls Load on its contents.
func LoadFile(path string, opts ...LoadOption) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &MalformedGridError{Row: -1, Err: err}
	}
	defer f.Close()

	g, err := Load(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("maze: load %s: %w", path, err)
	}

	return g, nil
}

func validDelim(r rune) bool {
	return r != 0 && r != '"' && r != '\r' && r != '\n' && utf8.ValidRune(r) && r != utf8.RuneError
}
