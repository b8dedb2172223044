package transport_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	emotes "github.com/reoring/emotes"
	"github.com/reoring/emotes/config"
	"github.com/reoring/emotes/transport"
)

func TestHTTP_Get_OK(t *testing.T) {
	var gotUA, gotID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotID = r.Header.Get("X-Request-ID")
		_, _ = w.Write([]byte(`{"status":200}`))
	}))
	defer srv.Close()

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	h := transport.NewHTTP(config.HTTP{UserAgent: "bridge/1.0"}, transport.WithLogger(logger))

	body, err := h.Get(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(body) != `{"status":200}` {
		t.Fatalf("unexpected body %q", body)
	}
	if gotUA != "bridge/1.0" {
		t.Fatalf("user agent = %q", gotUA)
	}
	if gotID == "" || !strings.Contains(logs.String(), "request_id="+gotID) {
		t.Fatalf("request id %q missing from logs: %s", gotID, logs.String())
	}
}

func TestHTTP_Get_StatusIsTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "channel not found", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := transport.NewHTTP(config.HTTP{}).Get(context.Background(), srv.URL)
	if !errors.Is(err, emotes.ErrTransport) {
		t.Fatalf("expected transport failure, got %v", err)
	}
	var se *transport.StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected StatusError cause, got %T", err)
	}
	if se.StatusCode != http.StatusNotFound || se.Body != "channel not found" {
		t.Fatalf("unexpected status error: %+v", se)
	}
}

func TestHTTP_Get_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := transport.NewHTTP(config.HTTP{Timeout: time.Second}).Get(context.Background(), url)
	if !errors.Is(err, emotes.ErrTransport) {
		t.Fatalf("expected transport failure, got %v", err)
	}
}

func TestHTTP_Get_TruncatedBodyIsIOFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hj, ok := w.(http.Hijacker)
		if !ok {
			t.Errorf("hijacking unsupported")
			return
		}
		conn, buf, err := hj.Hijack()
		if err != nil {
			t.Errorf("hijack: %v", err)
			return
		}
		defer conn.Close()
		_, _ = buf.WriteString("HTTP/1.1 200 OK\r\nContent-Length: 100\r\n\r\n{\"partial\":")
		_ = buf.Flush()
	}))
	defer srv.Close()

	_, err := transport.NewHTTP(config.HTTP{}).Get(context.Background(), srv.URL)
	if !errors.Is(err, emotes.ErrIO) {
		t.Fatalf("expected io failure, got %v", err)
	}
	if errors.Is(err, emotes.ErrTransport) {
		t.Fatalf("io failure must not also classify as transport")
	}
}

func TestHTTP_Get_CanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := transport.NewHTTP(config.HTTP{}).Get(ctx, srv.URL)
	if !errors.Is(err, emotes.ErrTransport) || !errors.Is(err, context.Canceled) {
		t.Fatalf("expected canceled transport failure, got %v", err)
	}
}

func TestGetterFunc(t *testing.T) {
	var g transport.Getter = transport.GetterFunc(func(ctx context.Context, url string) ([]byte, error) {
		return []byte(url), nil
	})
	b, err := g.Get(context.Background(), "x")
	if err != nil || string(b) != "x" {
		t.Fatalf("got %q err=%v", b, err)
	}
}
