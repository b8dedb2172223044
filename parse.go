package emotes

import (
	"context"
	"errors"
	"io"

	eng "github.com/reoring/emotes/internal/engine"
)

// ParseFrom consumes one JSON document from src and converts it with s.
// Every failure is returned as Issues.
func ParseFrom[T any](ctx context.Context, s Schema[T], src Source, opts ...ParseOpt) (T, error) {
	var zero T
	if s == nil {
		return zero, singleIssue(CodeParseError, "nil schema")
	}
	var opt ParseOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	if src.inner == nil {
		return zero, singleIssue(CodeParseError, "nil source")
	}
	v, err := eng.DecodeDocument(src.inner, eng.Options{MaxDepth: opt.maxDepth()})
	if err != nil {
		return zero, toIssues(err)
	}
	out, err := s.Parse(ctx, v)
	if err != nil {
		return zero, IssuesFromErr("/", err)
	}
	return out, nil
}

// Decode parses data with s and classifies any failure as a DecodeFailure of op.
func Decode[T any](op string, s Schema[T], data []byte, opts ...ParseOpt) (T, error) {
	v, err := ParseFrom(context.Background(), s, JSONBytes(data), opts...)
	if err != nil {
		var zero T
		return zero, DecodeFailure(op, err)
	}
	return v, nil
}

func toIssues(err error) Issues {
	if err == nil {
		return nil
	}
	if ii, ok := AsIssues(err); ok {
		return ii
	}
	var ie eng.IssueError
	if errors.As(err, &ie) {
		return AppendIssues(nil, Issue{Code: ie.Code, Path: ie.Path, Message: ie.Message})
	}
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return AppendIssues(nil, Issue{Code: CodeParseError, Path: "/", Message: "unexpected end of JSON input", Cause: err})
	}
	return AppendIssues(nil, Issue{Code: CodeParseError, Path: "/", Message: err.Error(), Cause: err})
}

func singleIssue(code, msg string) Issues { return AppendIssues(nil, Issue{Code: code, Message: msg}) }
