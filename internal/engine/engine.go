package engine

import (
	"encoding/json"
	"errors"
	"io"
	"strconv"
	"strings"
)

// Kind represents token kinds from a generic source.
type Kind int

const (
	KindBeginObject Kind = iota
	KindEndObject
	KindBeginArray
	KindEndArray
	KindKey
	KindString
	KindNumber
	KindBool
	KindNull
)

// Token represents a streaming token with approximate input offset.
type Token struct {
	Kind   Kind
	String string
	Number string
	Bool   bool
	Offset int64
}

// TokenSource is a minimal interface required by the engine.
type TokenSource interface {
	NextToken() (Token, error)
	Location() int64
}

// IssueError is a lightweight error carrying an issue code and JSON Pointer.
type IssueError struct {
	Code    string
	Path    string
	Message string
}

func (e IssueError) Error() string { return e.Message }

// Options bounds a single document decode.
type Options struct {
	// MaxDepth limits container nesting; zero disables the check.
	MaxDepth int
}

type decoder struct {
	src   TokenSource
	opt   Options
	depth int
}

// DecodeDocument builds an "any" tree from exactly one JSON value. Numbers are
// kept as json.Number and duplicate object keys resolve to the last value.
// Any token after the top-level value is reported as trailing data.
func DecodeDocument(src TokenSource, opt Options) (any, error) {
	d := &decoder{src: src, opt: opt}
	tok, err := src.NextToken()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	v, err := d.value(tok, "")
	if err != nil {
		return nil, err
	}
	if _, err := src.NextToken(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, err
		}
		return nil, IssueError{Code: "trailing_data", Path: "/", Message: "unexpected data after top-level value"}
	}
	return v, nil
}

func (d *decoder) value(tok Token, path string) (any, error) {
	switch tok.Kind {
	case KindBeginObject:
		if err := d.enter(path); err != nil {
			return nil, err
		}
		defer d.leave()
		return d.object(path)
	case KindBeginArray:
		if err := d.enter(path); err != nil {
			return nil, err
		}
		defer d.leave()
		return d.array(path)
	case KindString:
		return tok.String, nil
	case KindNumber:
		return json.Number(tok.Number), nil
	case KindBool:
		return tok.Bool, nil
	case KindNull:
		return nil, nil
	default:
		return nil, io.ErrUnexpectedEOF
	}
}

func (d *decoder) enter(path string) error {
	d.depth++
	if d.opt.MaxDepth > 0 && d.depth > d.opt.MaxDepth {
		p := path
		if p == "" {
			p = "/"
		}
		return IssueError{Code: "too_deep", Path: p, Message: "max depth exceeded"}
	}
	return nil
}

func (d *decoder) leave() { d.depth-- }

func (d *decoder) object(path string) (any, error) {
	m := make(map[string]any)
	for {
		tok, err := d.src.NextToken()
		if err != nil {
			return nil, unexpectedEOF(err)
		}
		if tok.Kind == KindEndObject {
			return m, nil
		}
		if tok.Kind != KindKey {
			return nil, io.ErrUnexpectedEOF
		}
		vt, err := d.src.NextToken()
		if err != nil {
			return nil, unexpectedEOF(err)
		}
		v, err := d.value(vt, joinJSONPointer(path, tok.String))
		if err != nil {
			return nil, err
		}
		m[tok.String] = v
	}
}

func (d *decoder) array(path string) (any, error) {
	arr := []any{}
	for {
		tok, err := d.src.NextToken()
		if err != nil {
			return nil, unexpectedEOF(err)
		}
		if tok.Kind == KindEndArray {
			return arr, nil
		}
		v, err := d.value(tok, joinJSONPointer(path, strconv.Itoa(len(arr))))
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
}

func unexpectedEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}

var jsonPointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func joinJSONPointer(base, token string) string {
	return base + "/" + jsonPointerEscaper.Replace(token)
}
