package gojson_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	eng "github.com/reoring/emotes/internal/engine"
	"github.com/reoring/emotes/source/gojson"
)

func TestNewBytes_TokenKinds(t *testing.T) {
	src := gojson.NewBytes([]byte(`{"id":"x","n":91735,"ok":true,"d":null,"l":["1.5"]}`))
	var kinds []eng.Kind
	var keys []string
	for {
		tok, err := src.NextToken()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		kinds = append(kinds, tok.Kind)
		if tok.Kind == eng.KindKey {
			keys = append(keys, tok.String)
		}
		if tok.Kind == eng.KindNumber && tok.Number != "91735" {
			t.Fatalf("number text not preserved: %q", tok.Number)
		}
	}
	want := []eng.Kind{
		eng.KindBeginObject,
		eng.KindKey, eng.KindString,
		eng.KindKey, eng.KindNumber,
		eng.KindKey, eng.KindBool,
		eng.KindKey, eng.KindNull,
		eng.KindKey, eng.KindBeginArray, eng.KindString, eng.KindEndArray,
		eng.KindEndObject,
	}
	if len(kinds) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(kinds), len(want), kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("token %d: got %v, want %v", i, kinds[i], want[i])
		}
	}
	if len(keys) != 5 || keys[0] != "id" || keys[4] != "l" {
		t.Fatalf("unexpected keys: %v", keys)
	}
}

func TestNewBytes_NestedObjectsRestoreKeyState(t *testing.T) {
	src := gojson.NewBytes([]byte(`{"a":{"b":"c"},"d":"e"}`))
	var keys []string
	for {
		tok, err := src.NextToken()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if tok.Kind == eng.KindKey {
			keys = append(keys, tok.String)
		}
	}
	if len(keys) != 3 || keys[2] != "d" {
		t.Fatalf("unexpected keys: %v", keys)
	}
}

func TestNewBytes_SyntaxError(t *testing.T) {
	src := gojson.NewBytes([]byte(`{"a" 1}`))
	var err error
	for err == nil {
		_, err = src.NextToken()
	}
	if errors.Is(err, io.EOF) {
		t.Fatalf("expected syntax error, got EOF")
	}
}

func drain(src eng.TokenSource) error {
	for {
		if _, err := src.NextToken(); err != nil {
			return err
		}
	}
}

func TestNextToken_SeparatorErrors(t *testing.T) {
	docs := map[string]string{
		"object missing comma":  `{"a":1 "b":2}`,
		"array missing comma":   `[1 2]`,
		"object trailing comma": `{"a":1,}`,
		"array trailing comma":  `[1,]`,
		"empty array element":   `[,]`,
		"empty object member":   `{,}`,
		"nested missing comma":  `{"a":{"x":1} "b":{"x":2}}`,
	}
	for name, doc := range docs {
		t.Run(name, func(t *testing.T) {
			for _, src := range []eng.TokenSource{gojson.NewBytes([]byte(doc)), gojson.NewReader(strings.NewReader(doc))} {
				if err := drain(src); errors.Is(err, io.EOF) {
					t.Fatalf("%s: expected syntax error, got EOF", doc)
				}
			}
		})
	}
}

func TestNextToken_InvalidStrings(t *testing.T) {
	docs := map[string]string{
		"invalid utf8":        "{\"a\":\"\xff\"}",
		"lone high surrogate": `{"a":"\ud800"}`,
		"high then letter":    `{"a":"\ud800x"}`,
		"lone low surrogate":  `{"a":"\udc00"}`,
		"high then high":      `["\ud800\ud800"]`,
	}
	for name, doc := range docs {
		t.Run(name, func(t *testing.T) {
			err := drain(gojson.NewBytes([]byte(doc)))
			if errors.Is(err, io.EOF) {
				t.Fatalf("%q: expected error, got EOF", doc)
			}
		})
	}

	for _, doc := range []string{`"\ud83d\ude00"`, `"\\ud800"`, `"\u00e9 caf\u00E9"`, `"plain é"`} {
		if err := drain(gojson.NewBytes([]byte(doc))); !errors.Is(err, io.EOF) {
			t.Fatalf("%s: expected clean EOF, got %v", doc, err)
		}
	}
}

func TestNewReader_ReadErrorSurfaces(t *testing.T) {
	boom := errors.New("read failed")
	src := gojson.NewReader(io.MultiReader(strings.NewReader(`{"a":`), errReader{boom}))
	if err := drain(src); !errors.Is(err, boom) {
		t.Fatalf("expected read error, got %v", err)
	}
}

type errReader struct{ err error }

func (r errReader) Read([]byte) (int, error) { return 0, r.err }
