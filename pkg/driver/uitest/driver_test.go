package uitest

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/devicelab-dev/hmgo/pkg/config"
	"github.com/devicelab-dev/hmgo/pkg/core"
)

func newTestDriver(handler http.HandlerFunc) (*Driver, *httptest.Server) {
	server := httptest.NewServer(handler)
	cfg := config.Default()
	cfg.AgentURL = server.URL
	cfg.Settle = 0 // keep tests fast
	cfg.LongPress = config.Duration(1500 * time.Millisecond)
	return NewDriver(cfg), server
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func TestDumpHierarchy(t *testing.T) {
	d, server := newTestDriver(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/hierarchy" {
			t.Errorf("expected /hierarchy, got %s", r.URL.Path)
		}
		if r.Method != "GET" {
			t.Errorf("expected GET, got %s", r.Method)
		}
		writeJSON(w, map[string]interface{}{
			"attributes": map[string]interface{}{"type": "Root"},
			"children": []interface{}{
				map[string]interface{}{
					"attributes": map[string]interface{}{"type": "Button", "text": "OK"},
					"children":   []interface{}{},
				},
			},
		})
	})
	defer server.Close()

	snap, err := d.DumpHierarchy()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if snap.Empty() {
		t.Fatal("expected a populated snapshot")
	}
	if len(snap.Children) != 1 {
		t.Fatalf("expected 1 child, got %d", len(snap.Children))
	}
	if got := snap.Children[0].Attributes["text"]; got != "OK" {
		t.Errorf("child text = %v, want OK", got)
	}
}

func TestDumpHierarchyBadJSON(t *testing.T) {
	d, server := newTestDriver(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	})
	defer server.Close()

	if _, err := d.DumpHierarchy(); err == nil {
		t.Error("expected parse error")
	}
}

func TestClick(t *testing.T) {
	d, server := newTestDriver(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/gesture/tap" {
			t.Errorf("expected /gesture/tap, got %s", r.URL.Path)
		}
		var req tapRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if req.X != 810 || req.Y != 2050 {
			t.Errorf("tap at (%d, %d), want (810, 2050)", req.X, req.Y)
		}
		writeJSON(w, map[string]string{"result": "ok"})
	})
	defer server.Close()

	if err := d.Click(810, 2050); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDoubleClick(t *testing.T) {
	d, server := newTestDriver(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/gesture/doubleTap" {
			t.Errorf("expected /gesture/doubleTap, got %s", r.URL.Path)
		}
		writeJSON(w, map[string]string{"result": "ok"})
	})
	defer server.Close()

	if err := d.DoubleClick(100, 200); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLongClickCarriesDuration(t *testing.T) {
	d, server := newTestDriver(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/gesture/longTap" {
			t.Errorf("expected /gesture/longTap, got %s", r.URL.Path)
		}
		var req longTapRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if req.Duration != 1500 {
			t.Errorf("duration = %d, want 1500", req.Duration)
		}
		writeJSON(w, map[string]string{"result": "ok"})
	})
	defer server.Close()

	if err := d.LongClick(100, 200); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestInputText(t *testing.T) {
	d, server := newTestDriver(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/input/text" {
			t.Errorf("expected /input/text, got %s", r.URL.Path)
		}
		var req inputTextRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if req.Text != "user@example.com" {
			t.Errorf("text = %q", req.Text)
		}
		writeJSON(w, map[string]string{"result": "ok"})
	})
	defer server.Close()

	if err := d.InputText("user@example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAgentErrorEnvelope(t *testing.T) {
	d, server := newTestDriver(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		writeJSON(w, map[string]string{
			"error":   "internal",
			"message": "gesture dispatch failed",
		})
	})
	defer server.Close()

	err := d.Click(1, 2)
	if err == nil {
		t.Fatal("expected error from agent")
	}
	if err.Error() != "internal: gesture dispatch failed" {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestAgentUnreachable(t *testing.T) {
	cfg := config.Default()
	cfg.AgentURL = "http://127.0.0.1:1" // nothing listens here
	cfg.Timeout = config.Duration(200 * time.Millisecond)
	cfg.Settle = 0
	d := NewDriver(cfg)

	err := d.Click(1, 2)
	if !errors.Is(err, core.ErrAgentUnreachable) {
		t.Errorf("expected ErrAgentUnreachable, got %v", err)
	}
}

func TestSettlePauseAfterAction(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]string{"result": "ok"})
	}))
	defer server.Close()

	cfg := config.Default()
	cfg.AgentURL = server.URL
	cfg.Settle = config.Duration(50 * time.Millisecond)
	d := NewDriver(cfg)

	start := time.Now()
	if err := d.Click(1, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 50*time.Millisecond {
		t.Errorf("expected settle pause, action returned after %v", elapsed)
	}
}

func TestClientStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/status" {
			t.Errorf("expected /status, got %s", r.URL.Path)
		}
		writeJSON(w, map[string]string{"status": "ready"})
	}))
	defer server.Close()

	c := NewClient(server.URL, time.Second)
	ok, err := c.Status()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("expected agent to report ready")
	}
}
