package spectate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"

	"github.com/lixenwraith/health-snake/catalog"
	"github.com/lixenwraith/health-snake/core"
	"github.com/lixenwraith/health-snake/engine"
	"github.com/lixenwraith/health-snake/status"
)

type fakeSource struct {
	snap engine.Snapshot
}

func (f *fakeSource) Snapshot() engine.Snapshot {
	return f.snap
}

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	src := &fakeSource{snap: engine.Snapshot{
		SessionID: "abc",
		State:     engine.StateRunning,
		Grid:      core.Grid{Width: 30, Height: 30},
		Snake:     []core.Position{{X: 15, Y: 15}},
		Score:     12,
	}}
	reg := status.NewRegistry()
	reg.Ints.Get("engine.ticks").Add(3)
	s := NewServer("127.0.0.1:0", src, catalog.Default(), reg)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, ts
}

func getJSON(t *testing.T, url string, header http.Header, out any) int {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		t.Fatal(err)
	}
	for k, v := range header {
		req.Header[k] = v
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	if out != nil && resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
	return resp.StatusCode
}

func TestSnapshotEndpoint(t *testing.T) {
	_, ts := newTestServer(t)

	var body map[string]any
	if code := getJSON(t, ts.URL+"/api/snapshot", nil, &body); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if body["session_id"] != "abc" || body["state"] != "Running" {
		t.Errorf("snapshot = %v", body)
	}
	if body["score"].(float64) != 12 {
		t.Errorf("score = %v", body["score"])
	}
}

func TestCatalogEndpoint(t *testing.T) {
	_, ts := newTestServer(t)

	var body struct {
		Facts []catalog.Fact       `json:"facts"`
		Guide []catalog.GuideEntry `json:"guide"`
	}
	if code := getJSON(t, ts.URL+"/api/catalog", nil, &body); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if len(body.Facts) != len(catalog.Default()) {
		t.Errorf("facts = %d, want %d", len(body.Facts), len(catalog.Default()))
	}
	if len(body.Guide) != len(catalog.Guide()) {
		t.Errorf("guide = %d entries", len(body.Guide))
	}
}

func TestMetricsEndpoint(t *testing.T) {
	_, ts := newTestServer(t)

	var body map[string]any
	if code := getJSON(t, ts.URL+"/api/metrics", nil, &body); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if body["engine.ticks"].(float64) != 3 {
		t.Errorf("engine.ticks = %v", body["engine.ticks"])
	}
}

func TestCompatEndpoint(t *testing.T) {
	_, ts := newTestServer(t)

	phone := http.Header{"User-Agent": {"Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) Mobile/15E148"}}
	var body map[string]any
	if code := getJSON(t, ts.URL+"/api/compat?width=390&touch=true", phone, &body); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if body["compatible"] != false {
		t.Errorf("phone reported compatible: %v", body)
	}

	desktop := http.Header{"User-Agent": {"Mozilla/5.0 (X11; Linux x86_64) Chrome/120.0"}}
	body = nil
	getJSON(t, ts.URL+"/api/compat?width=1920", desktop, &body)
	if body["compatible"] != true {
		t.Errorf("desktop reported incompatible: %v", body)
	}

	if code := getJSON(t, ts.URL+"/api/compat?width=wide", nil, nil); code != http.StatusBadRequest {
		t.Errorf("bad width status = %d, want 400", code)
	}
}

func TestWebsocketStream(t *testing.T) {
	s, ts := newTestServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.CloseNow()

	// Initial frame carries the snapshot only
	var first Frame
	readFrame(t, ctx, conn, &first)
	if first.Event != nil || first.Snapshot.SessionID != "abc" {
		t.Errorf("first frame = %+v", first)
	}

	// Wait for the handler to register before publishing
	deadline := time.Now().Add(2 * time.Second)
	for s.Hub().Clients() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}

	s.Listener()(engine.Event{Type: engine.EventItemCollected, SessionID: "abc", Score: 22})

	var frame map[string]any
	readFrame(t, ctx, conn, &frame)
	ev, ok := frame["event"].(map[string]any)
	if !ok {
		t.Fatalf("frame without event: %v", frame)
	}
	if ev["type"] != "item_collected" {
		t.Errorf("event type = %v", ev["type"])
	}

	conn.Close(websocket.StatusNormalClosure, "")
}

func readFrame(t *testing.T, ctx context.Context, conn *websocket.Conn, out any) {
	t.Helper()
	_, data, err := conn.Read(ctx)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		t.Fatalf("decode frame: %v", err)
	}
}

func TestHubDropsWhenFull(t *testing.T) {
	reg := status.NewRegistry()
	h := NewHub(reg)
	c, unsubscribe := h.Subscribe()

	for i := 0; i < cap(c.send)+3; i++ {
		h.Broadcast([]byte("x"))
	}
	if got := reg.Ints.Get("spectate.frames_dropped").Load(); got != 3 {
		t.Errorf("dropped = %d, want 3", got)
	}
	if len(c.Frames()) != cap(c.send) {
		t.Errorf("queued = %d, want %d", len(c.Frames()), cap(c.send))
	}

	unsubscribe()
	unsubscribe()
	if h.Clients() != 0 {
		t.Errorf("Clients() = %d after unsubscribe", h.Clients())
	}
}

func TestRunShutsDown(t *testing.T) {
	s := NewServer("127.0.0.1:0", &fakeSource{}, nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
