package reporting

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

type staticBearer string

func (s staticBearer) Token(ctx context.Context) string { return string(s) }

func TestHTTPRepo_ListAssets(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/assets" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("org_id"); got != "org1" {
			t.Errorf("unexpected org_id %q", got)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("unexpected auth header %q", got)
		}
		w.Write([]byte(`[{"id":"a1","name":"Projector","status":"borrowed","borrower_id":"u1"}]`))
	}))
	defer srv.Close()

	repo := NewHTTPRepo(srv.URL, srv.Client(), staticBearer("tok"))
	rows, err := repo.ListAssets(context.Background(), "org1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(rows) != 1 || rows[0].Status != AssetStatusBorrowed {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

func TestHTTPRepo_NonSuccessStatusIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	repo := NewHTTPRepo(srv.URL, srv.Client(), nil)
	if _, err := repo.ListAssets(context.Background(), "org1"); err == nil {
		t.Fatalf("expected error for 502")
	}
}
