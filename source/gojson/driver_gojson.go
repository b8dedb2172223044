// Package gojson tokenizes JSON documents with goccy/go-json for the engine.
package gojson

import (
	"bytes"
	"errors"
	"io"
	"strconv"
	"unicode/utf8"

	j "github.com/goccy/go-json"

	eng "github.com/reoring/emotes/internal/engine"
)

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type frame struct {
	kind         containerKind
	expectingKey bool
}

// ErrMalformed reports a document the tokenizer accepted but that is not
// valid JSON, such as a missing or trailing comma.
var ErrMalformed = errors.New("gojson: malformed JSON document")

// ErrInvalidString reports invalid UTF-8 or an unpaired surrogate escape.
var ErrInvalidString = errors.New("gojson: invalid UTF-8 or unpaired surrogate in string")

// source buffers the whole input. go-json's Token() skips separators without
// checking them, so the buffered document is checked with j.Valid once the
// top-level value has been tokenized.
type source struct {
	r       io.Reader
	data    []byte
	dec     *j.Decoder
	stack   []frame
	started bool
	checked bool
}

// NewReader wraps an io.Reader into an engine.TokenSource for JSON using go-json.
// The reader is drained on the first NextToken call.
func NewReader(r io.Reader) eng.TokenSource { return &source{r: r} }

// NewBytes wraps a byte slice into an engine.TokenSource for JSON using go-json.
func NewBytes(b []byte) eng.TokenSource { return &source{data: b} }

func (s *source) load() error {
	if s.dec != nil {
		return nil
	}
	if s.r != nil {
		b, err := io.ReadAll(s.r)
		if err != nil {
			return err
		}
		s.data, s.r = b, nil
	}
	s.dec = j.NewDecoder(bytes.NewReader(s.data))
	s.dec.UseNumber()
	return nil
}

func (s *source) NextToken() (eng.Token, error) {
	if err := s.load(); err != nil {
		return eng.Token{}, err
	}
	tok, err := s.dec.Token()
	if err != nil {
		// Empty input and mid-container EOF are left to the engine.
		if errors.Is(err, io.EOF) && s.started && len(s.stack) == 0 && !s.checked {
			s.checked = true
			if verr := checkDocument(s.data); verr != nil {
				return eng.Token{}, verr
			}
		}
		return eng.Token{}, err
	}
	s.started = true
	switch v := tok.(type) {
	case j.Delim:
		switch v {
		case '{':
			s.stack = append(s.stack, frame{kind: kindObject, expectingKey: true})
			return eng.Token{Kind: eng.KindBeginObject, Offset: -1}, nil
		case '}':
			s.pop()
			return eng.Token{Kind: eng.KindEndObject, Offset: -1}, nil
		case '[':
			s.stack = append(s.stack, frame{kind: kindArray})
			return eng.Token{Kind: eng.KindBeginArray, Offset: -1}, nil
		case ']':
			s.pop()
			return eng.Token{Kind: eng.KindEndArray, Offset: -1}, nil
		}
	case string:
		if n := len(s.stack); n > 0 {
			top := &s.stack[n-1]
			if top.kind == kindObject && top.expectingKey {
				top.expectingKey = false
				return eng.Token{Kind: eng.KindKey, String: v, Offset: -1}, nil
			}
		}
		s.valueDone()
		return eng.Token{Kind: eng.KindString, String: v, Offset: -1}, nil
	case bool:
		s.valueDone()
		return eng.Token{Kind: eng.KindBool, Bool: v, Offset: -1}, nil
	case j.Number:
		s.valueDone()
		return eng.Token{Kind: eng.KindNumber, Number: string(v), Offset: -1}, nil
	case float64:
		s.valueDone()
		return eng.Token{Kind: eng.KindNumber, Number: strconv.FormatFloat(v, 'g', -1, 64), Offset: -1}, nil
	}
	s.valueDone()
	return eng.Token{Kind: eng.KindNull, Offset: -1}, nil
}

// pop closes the current container; the container itself completes a value
// in its parent.
func (s *source) pop() {
	if n := len(s.stack); n > 0 {
		s.stack = s.stack[:n-1]
	}
	s.valueDone()
}

// valueDone flips an enclosing object back to expecting a key.
func (s *source) valueDone() {
	if n := len(s.stack); n > 0 {
		top := &s.stack[n-1]
		if top.kind == kindObject && !top.expectingKey {
			top.expectingKey = true
		}
	}
}

func (s *source) Location() int64 { return -1 }

func checkDocument(data []byte) error {
	if !j.Valid(data) {
		return ErrMalformed
	}
	if !utf8.Valid(data) || !pairedSurrogates(data) {
		return ErrInvalidString
	}
	return nil
}

// pairedSurrogates reports whether every \u escape in data that encodes a
// UTF-16 surrogate is a high surrogate immediately followed by a low one.
// data must already be valid JSON, so backslashes only occur inside strings.
func pairedSurrogates(data []byte) bool {
	for i := 0; i < len(data); i++ {
		if data[i] != '\\' {
			continue
		}
		i++
		if i >= len(data) || data[i] != 'u' {
			continue
		}
		r := hex4(data[i+1:])
		i += 4
		switch {
		case r < 0:
			return false
		case r >= 0xDC00 && r <= 0xDFFF:
			return false
		case r >= 0xD800 && r <= 0xDBFF:
			if i+6 >= len(data) || data[i+1] != '\\' || data[i+2] != 'u' {
				return false
			}
			if lo := hex4(data[i+3:]); lo < 0xDC00 || lo > 0xDFFF {
				return false
			}
			i += 6
		}
	}
	return true
}

func hex4(b []byte) rune {
	if len(b) < 4 {
		return -1
	}
	var r rune
	for _, c := range b[:4] {
		switch {
		case '0' <= c && c <= '9':
			r = r<<4 | rune(c-'0')
		case 'a' <= c && c <= 'f':
			r = r<<4 | rune(c-'a'+10)
		case 'A' <= c && c <= 'F':
			r = r<<4 | rune(c-'A'+10)
		default:
			return -1
		}
	}
	return r
}
