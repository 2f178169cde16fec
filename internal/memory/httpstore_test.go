package memory

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Forgingalex/rei/internal/models"
)

func TestHTTPStoreCheckBoundary(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/boundaries/check" {
			t.Errorf("request: %s %s, want: POST /boundaries/check", r.Method, r.URL.Path)
		}
		var req checkBoundaryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		if req.Prompt != "should I work overtime?" {
			t.Errorf("prompt: %v, want: should I work overtime?", req.Prompt)
		}
		json.NewEncoder(w).Encode(checkBoundaryResponse{
			Matches: []models.BoundaryMatch{
				{ID: "boundary_ab12", Text: "working overtime", Similarity: 0.91},
			},
		})
	}))
	defer server.Close()

	store, err := NewHTTPStore(server.URL+"/", newTestLogger())
	if err != nil {
		t.Fatalf("NewHTTPStore returned error: %v", err)
	}

	matches, err := store.CheckBoundary(context.Background(), "should I work overtime?")
	if err != nil {
		t.Fatalf("CheckBoundary returned error: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("match count: %v, want: 1", len(matches))
	}
	if matches[0].ID != "boundary_ab12" {
		t.Errorf("match id: %v, want: boundary_ab12", matches[0].ID)
	}
	if matches[0].Similarity != 0.91 {
		t.Errorf("similarity: %v, want: 0.91", matches[0].Similarity)
	}
}

func TestHTTPStoreAddBoundary(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/boundaries" {
			t.Errorf("request: %s %s, want: POST /boundaries", r.Method, r.URL.Path)
		}
		var req addBoundaryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		if req.Text != "no weekend work" || req.Severity != "absolute" {
			t.Errorf("payload: %+v, want text=no weekend work severity=absolute", req)
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(addBoundaryResponse{ID: "boundary_cd34"})
	}))
	defer server.Close()

	store, err := NewHTTPStore(server.URL, newTestLogger())
	if err != nil {
		t.Fatalf("NewHTTPStore returned error: %v", err)
	}

	id, err := store.AddBoundary(context.Background(), "no weekend work", "said during 1:1", models.SeverityAbsolute)
	if err != nil {
		t.Fatalf("AddBoundary returned error: %v", err)
	}
	if id != "boundary_cd34" {
		t.Errorf("id: %v, want: boundary_cd34", id)
	}
}

func TestHTTPStoreRemoveNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	store, err := NewHTTPStore(server.URL, newTestLogger())
	if err != nil {
		t.Fatalf("NewHTTPStore returned error: %v", err)
	}

	err = store.RemoveBoundary(context.Background(), "boundary_missing")
	if !errors.Is(err, ErrBoundaryNotFound) {
		t.Errorf("error: %v, want: %v", err, ErrBoundaryNotFound)
	}
}

func TestHTTPStoreServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "embedding backend down", http.StatusInternalServerError)
	}))
	defer server.Close()

	store, err := NewHTTPStore(server.URL, newTestLogger())
	if err != nil {
		t.Fatalf("NewHTTPStore returned error: %v", err)
	}

	_, err = store.CheckBoundary(context.Background(), "anything")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "status 500") {
		t.Errorf("error: %v, want mention of status 500", err)
	}
}

func TestHTTPStoreStats(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/boundaries/stats" {
			t.Errorf("request: %s %s, want: GET /boundaries/stats", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(Stats{TotalBoundaries: 7})
	}))
	defer server.Close()

	store, err := NewHTTPStore(server.URL, newTestLogger())
	if err != nil {
		t.Fatalf("NewHTTPStore returned error: %v", err)
	}

	stats, err := store.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats returned error: %v", err)
	}
	if stats.TotalBoundaries != 7 {
		t.Errorf("TotalBoundaries: %v, want: 7", stats.TotalBoundaries)
	}
}

func TestNewHTTPStoreRequiresURL(t *testing.T) {
	if _, err := NewHTTPStore("   ", newTestLogger()); err == nil {
		t.Error("expected error for blank url, got nil")
	}
}

func TestNewStoreFactory(t *testing.T) {
	tests := []struct {
		name     string
		kind     string
		endpoint string
		wantErr  bool
	}{
		{name: "in-memory", kind: KindInMemory},
		{name: "empty kind defaults to in-memory", kind: ""},
		{name: "http", kind: KindHTTP, endpoint: "http://localhost:8090"},
		{name: "http without endpoint", kind: KindHTTP, wantErr: true},
		{name: "unknown kind", kind: "chroma", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := NewStore(tt.kind, tt.endpoint, newTestLogger())
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewStore returned error: %v", err)
			}
			if store == nil {
				t.Error("expected store, got nil")
			}
		})
	}
}
