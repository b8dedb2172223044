package bttv_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	emotes "github.com/reoring/emotes"
	"github.com/reoring/emotes/bttv"
	"github.com/reoring/emotes/config"
	"github.com/reoring/emotes/transport"
)

const channelDoc = `{"status":200,"urlTemplate":"//cdn.betterttv.net/emote/{{id}}/{{image}}","bots":[],"emotes":[{"id":"594e207ae949fe3b435e5859","channel":"oshleyy","code":"pachiW","imageType":"png"}]}`

const globalDoc = `{
  "status": 200,
  "urlTemplate": "//cdn.betterttv.net/emote/{{id}}/{{image}}",
  "emotes": [
    {"id": "54fa925e01e468494b85b54d", "code": "OhMyGoodness", "channel": null, "restrictions": {"channels": [], "games": [], "emoticonSet": null}, "imageType": "png"},
    {"id": "54fa8f1401e468494b85b537", "code": ":tf:", "channel": null, "imageType": "png"},
    {"id": "566ca04265dbbdab32ec054a", "code": "cvMask", "imageType": "png", "width": 28},
    {"id": "54fa8f1401e468494b85b537", "code": ":tf:", "channel": null, "imageType": "png"}
  ]
}`

func strp(s string) *string { return &s }

func TestDecodeChannel_Literal(t *testing.T) {
	ch, err := bttv.DecodeChannel([]byte(channelDoc))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if ch.Status != 200 || ch.URLTemplate != "//cdn.betterttv.net/emote/{{id}}/{{image}}" {
		t.Fatalf("unexpected header: %+v", ch)
	}
	if ch.Bots == nil || len(ch.Bots) != 0 {
		t.Fatalf("bots must decode as an empty sequence, got %#v", ch.Bots)
	}
	want := []bttv.Emote{{
		ID:        "594e207ae949fe3b435e5859",
		Code:      "pachiW",
		Channel:   strp("oshleyy"),
		ImageType: "png",
	}}
	if !reflect.DeepEqual(ch.Emotes, want) {
		t.Fatalf("got %#v, want %#v", ch.Emotes, want)
	}
}

func TestDecodeGlobal_PreservesOrderAndDuplicates(t *testing.T) {
	g, err := bttv.DecodeGlobal([]byte(globalDoc))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	codes := make([]string, 0, len(g.Emotes))
	for _, e := range g.Emotes {
		codes = append(codes, e.Code)
	}
	if got := strings.Join(codes, ","); got != "OhMyGoodness,:tf:,cvMask,:tf:" {
		t.Fatalf("unexpected order %q", got)
	}
	if g.Emotes[0].Channel != nil || g.Emotes[2].Channel != nil {
		t.Fatalf("null and absent channel must decode as nil")
	}
	r, ok := g.Emotes[0].Restrictions.(map[string]any)
	if !ok || len(r) != 3 {
		t.Fatalf("restrictions must be kept as decoded, got %#v", g.Emotes[0].Restrictions)
	}
	if g.Emotes[1].Restrictions != nil {
		t.Fatalf("absent restrictions must be nil")
	}
}

func TestDecodeChannel_OrderMatchesInput(t *testing.T) {
	var b strings.Builder
	b.WriteString(`{"status":200,"urlTemplate":"t","bots":[],"emotes":[`)
	ids := []string{"e", "d", "c", "b", "a"}
	for i, id := range ids {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(`{"id":"` + id + `","code":"C` + id + `","imageType":"gif"}`)
	}
	b.WriteString(`]}`)

	ch, err := bttv.DecodeChannel([]byte(b.String()))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(ch.Emotes) != len(ids) {
		t.Fatalf("len = %d", len(ch.Emotes))
	}
	for i, id := range ids {
		if ch.Emotes[i].ID != id {
			t.Fatalf("emote %d: id %q, want %q", i, ch.Emotes[i].ID, id)
		}
	}
}

func TestDecodeChannel_BotsAreNotInterpreted(t *testing.T) {
	doc := `{"status":200,"urlTemplate":"t","bots":["nightbot",{"name":"x"},null],"emotes":[]}`
	ch, err := bttv.DecodeChannel([]byte(doc))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(ch.Bots) != 3 || ch.Bots[0] != "nightbot" || ch.Bots[2] != nil {
		t.Fatalf("unexpected bots %#v", ch.Bots)
	}
}

func TestDecode_Failures(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		path string
		code string
	}{
		{"global missing emotes", `{"status":200,"urlTemplate":"t"}`, "/emotes", emotes.CodeRequired},
		{"emote missing imageType", `{"status":200,"urlTemplate":"t","emotes":[{"id":"a","code":"b"}]}`, "/emotes/0/imageType", emotes.CodeRequired},
		{"status not integral", `{"status":200.5,"urlTemplate":"t","emotes":[]}`, "/status", emotes.CodeInvalidType},
		{"status overflow", `{"status":4294967296,"urlTemplate":"t","emotes":[]}`, "/status", emotes.CodeOverflow},
		{"null emotes", `{"status":200,"urlTemplate":"t","emotes":null}`, "/emotes", emotes.CodeInvalidType},
		{"channel wrong type", `{"status":200,"urlTemplate":"t","emotes":[{"id":"a","code":"b","channel":7,"imageType":"png"}]}`, "/emotes/0/channel", emotes.CodeInvalidType},
		{"trailing data", `{"status":200,"urlTemplate":"t","emotes":[]} {}`, "", emotes.CodeTrailingData},
		{"malformed", `{"status":200,`, "", emotes.CodeParseError},
		{"missing comma", `{"status":200 "urlTemplate":"t","emotes":[]}`, "", emotes.CodeParseError},
		{"trailing comma", `{"status":200,"urlTemplate":"t","emotes":[],}`, "", emotes.CodeParseError},
		{"empty array element", `{"status":200,"urlTemplate":"t","emotes":[,]}`, "", emotes.CodeParseError},
		{"trailing comma in emote", `{"status":200,"urlTemplate":"t","emotes":[{"id":"a","code":"b","imageType":"png",}]}`, "", emotes.CodeParseError},
		{"lone surrogate", `{"status":200,"urlTemplate":"\ud800","emotes":[]}`, "", emotes.CodeParseError},
		{"invalid utf8", "{\"status\":200,\"urlTemplate\":\"\xff\",\"emotes\":[]}", "", emotes.CodeParseError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := bttv.DecodeGlobal([]byte(tc.doc))
			if !errors.Is(err, emotes.ErrDecode) {
				t.Fatalf("expected decode failure, got %v", err)
			}
			if !reflect.DeepEqual(g, bttv.Global{}) {
				t.Fatalf("failed decode must not return a populated record: %+v", g)
			}
			iss, ok := emotes.AsIssues(err)
			if !ok || len(iss) == 0 {
				t.Fatalf("expected issues, got %v", err)
			}
			if iss[0].Code != tc.code {
				t.Fatalf("code = %s, want %s (%v)", iss[0].Code, tc.code, err)
			}
			if tc.path != "" && iss[0].Path != tc.path {
				t.Fatalf("path = %s, want %s", iss[0].Path, tc.path)
			}
		})
	}
}

func TestDecodeChannel_MissingBotsFails(t *testing.T) {
	_, err := bttv.DecodeChannel([]byte(`{"status":200,"urlTemplate":"t","emotes":[]}`))
	if !errors.Is(err, emotes.ErrDecode) {
		t.Fatalf("expected decode failure, got %v", err)
	}
}

func TestDecode_TooDeep(t *testing.T) {
	doc := `{"status":200,"urlTemplate":"t","emotes":[{"id":"a","code":"b","imageType":"png","restrictions":{"a":{"b":{}}}}]}`
	if _, err := bttv.DecodeGlobal([]byte(doc)); err != nil {
		t.Fatalf("default depth should accept document: %v", err)
	}
	_, err := bttv.DecodeGlobal([]byte(doc), emotes.ParseOpt{MaxDepth: 4})
	iss, ok := emotes.AsIssues(err)
	if !errors.Is(err, emotes.ErrDecode) || !ok || iss[0].Code != emotes.CodeTooDeep {
		t.Fatalf("expected too_deep, got %v", err)
	}
}

func TestDecode_Deterministic(t *testing.T) {
	a, err := bttv.DecodeGlobal([]byte(globalDoc))
	if err != nil {
		t.Fatal(err)
	}
	b, err := bttv.DecodeGlobal([]byte(globalDoc))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("decode is not deterministic")
	}
	if err := bttv.GlobalSchema().ValidateValue(context.Background(), a); err != nil {
		t.Fatalf("decoded value does not validate: %v", err)
	}
}

func TestFetch_URLs(t *testing.T) {
	var got []string
	g := transport.GetterFunc(func(ctx context.Context, url string) ([]byte, error) {
		got = append(got, url)
		return []byte(channelDoc), nil
	})
	ctx := context.Background()
	if _, err := bttv.FetchGlobal(ctx, g); err != nil {
		t.Fatal(err)
	}
	if _, err := bttv.FetchChannel(ctx, g, "oshleyy"); err != nil {
		t.Fatal(err)
	}
	want := []string{
		"https://api.betterttv.net/2/emotes",
		"https://api.betterttv.net/2/channels/oshleyy",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestFetch_GetterErrorIsTransportFailure(t *testing.T) {
	boom := errors.New("connection reset")
	g := transport.GetterFunc(func(ctx context.Context, url string) ([]byte, error) { return nil, boom })

	_, err := bttv.FetchGlobal(context.Background(), g)
	if !errors.Is(err, emotes.ErrTransport) || !errors.Is(err, boom) {
		t.Fatalf("expected transport failure wrapping cause, got %v", err)
	}

	ioErr := emotes.IOFailure("custom", boom)
	g = transport.GetterFunc(func(ctx context.Context, url string) ([]byte, error) { return nil, ioErr })
	_, err = bttv.FetchChannel(context.Background(), g, "x")
	if k, _ := emotes.KindOf(err); k != emotes.KindIO {
		t.Fatalf("classified errors must propagate unchanged, got %v", err)
	}
}

func TestClient_OverHTTP(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/2/emotes", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(globalDoc))
	})
	mux.HandleFunc("/2/channels/oshleyy", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(channelDoc))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	cfg := config.BTTV{
		GlobalURL:  srv.URL + "/2/emotes",
		ChannelURL: srv.URL + "/2/channels/{name}",
	}
	c := bttv.NewClient(transport.NewHTTP(config.HTTP{}), cfg)
	ctx := context.Background()

	g, err := c.Global(ctx)
	if err != nil || len(g.Emotes) != 4 {
		t.Fatalf("global: %v (%d emotes)", err, len(g.Emotes))
	}
	ch, err := c.Channel(ctx, "oshleyy")
	if err != nil || ch.Emotes[0].Code != "pachiW" {
		t.Fatalf("channel: %+v err=%v", ch, err)
	}
	_, err = c.Channel(ctx, "nobody")
	if !errors.Is(err, emotes.ErrTransport) {
		t.Fatalf("expected transport failure for unknown channel, got %v", err)
	}
}
