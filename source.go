package emotes

import (
	"io"

	eng "github.com/reoring/emotes/internal/engine"
	"github.com/reoring/emotes/source/gojson"
)

// Source is a JSON token stream consumed by ParseFrom.
type Source struct {
	inner eng.TokenSource
}

// JSONBytes wraps a byte slice as a JSON Source backed by goccy/go-json.
func JSONBytes(b []byte) Source { return Source{inner: gojson.NewBytes(b)} }

// JSONReader wraps an io.Reader as a JSON Source backed by goccy/go-json.
func JSONReader(r io.Reader) Source { return Source{inner: gojson.NewReader(r)} }
