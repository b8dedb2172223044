package emotes

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes reported by schemas.
const (
	CodeInvalidType  = "invalid_type"
	CodeRequired     = "required"
	CodeParseError   = "parse_error"
	CodeOverflow     = "overflow"
	CodeTooDeep      = "too_deep"
	CodeTrailingData = "trailing_data"
)

// Issue represents a single schema mismatch inside a decoded document.
type Issue struct {
	Path    string // JSON Pointer (for example: /emotes/2/imageType).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: what the schema expected.
	Cause   error  // Optional: underlying error.
}

// Issues is a collection of schema mismatches that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		path := it.Path
		if path == "" {
			path = "/"
		}
		fmt.Fprintf(b, "%s at %s", it.Code, path)
		if it.Hint != "" {
			fmt.Fprintf(b, " (%s)", it.Hint)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Unwrap exposes the causes carried by the issues so errors.Is/As can reach
// tokenizer or conversion errors.
func (iss Issues) Unwrap() []error {
	var out []error
	for _, it := range iss {
		if it.Cause != nil {
			out = append(out, it.Cause)
		}
	}
	return out
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// Rebase prefixes every issue path with base, the JSON Pointer of the
// container that parsed the failing child.
func (iss Issues) Rebase(base string) Issues {
	out := make(Issues, 0, len(iss))
	for _, it := range iss {
		p := it.Path
		switch {
		case p == "" || p == "/":
			p = base
		case p[0] == '/':
			p = base + p
		default:
			p = base + "/" + p
		}
		it.Path = p
		out = append(out, it)
	}
	return out
}

// EscapePointer escapes a key for use as a JSON Pointer reference token.
func EscapePointer(key string) string {
	if !strings.ContainsAny(key, "~/") {
		return key
	}
	return strings.NewReplacer("~", "~0", "/", "~1").Replace(key)
}

// IssuesFromErr converts an error into Issues, wrapping non-Issues with
// CodeParseError at path.
func IssuesFromErr(path string, err error) Issues {
	if err == nil {
		return nil
	}
	if iss, ok := AsIssues(err); ok {
		return iss
	}
	return Issues{Issue{Path: path, Code: CodeParseError, Message: err.Error(), Cause: err}}
}
