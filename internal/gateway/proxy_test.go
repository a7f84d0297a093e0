package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

type staticBearer string

func (s staticBearer) Token(ctx context.Context) string { return string(s) }

func TestProxy_StripsPrefixAndAttachesBearer(t *testing.T) {
	var gotPath, gotAuth string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer upstream.Close()

	p, err := New(upstream.URL, "/api", staticBearer("tok"))
	if err != nil {
		t.Fatalf("new proxy: %v", err)
	}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Any("/api/*rest", p.Handler())

	// ReverseProxy needs the full ResponseWriter surface, so go through a
	// real server rather than a recorder.
	front := httptest.NewServer(r)
	defer front.Close()

	resp, err := http.Get(front.URL + "/api/assets?org_id=org1")
	if err != nil {
		t.Fatalf("proxy request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if gotPath != "/assets" {
		t.Fatalf("expected stripped path /assets, got %q", gotPath)
	}
	if gotAuth != "Bearer tok" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
}

func TestProxy_RejectsRelativeUpstream(t *testing.T) {
	if _, err := New("not-a-url", "/api", nil); err == nil {
		t.Fatalf("expected error for relative upstream")
	}
}
