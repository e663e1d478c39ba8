package statsapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/statgrove/mlb-mcp/internal/common"
)

func testClient(baseURL string) *Client {
	return NewClient(baseURL, 5*time.Second, common.NewSilentLogger())
}

func TestClient_Get_Success(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("Expected GET, got %s", r.Method)
		}
		if r.URL.Path != "/teams" {
			t.Errorf("Expected /teams, got %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("season"); got != "2023" {
			t.Errorf("Expected season=2023, got %q", got)
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("Expected Accept application/json, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"teams": []any{}})
	}))
	defer mockServer.Close()

	client := testClient(mockServer.URL)
	query := url.Values{}
	query.Set("season", "2023")

	body, err := client.Get(context.Background(), "/teams", query)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if _, ok := result["teams"]; !ok {
		t.Error("Expected teams key in response")
	}
}

func TestClient_Get_NoQuery(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.RawQuery != "" {
			t.Errorf("Expected empty query string, got %q", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"people": []any{}})
	}))
	defer mockServer.Close()

	client := testClient(mockServer.URL)
	if _, err := client.Get(context.Background(), "/people/660271", nil); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

func TestClient_Get_NotFound(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "Object not found"})
	}))
	defer mockServer.Close()

	client := testClient(mockServer.URL)
	_, err := client.Get(context.Background(), "/teams/999999/roster", nil)
	if err == nil {
		t.Fatal("Expected error for 404 response")
	}

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("Expected *StatusError, got %T", err)
	}
	if statusErr.Status != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", statusErr.Status)
	}
	if !strings.Contains(string(statusErr.Body), "Object not found") {
		t.Errorf("Expected upstream body to be preserved, got %q", statusErr.Body)
	}
}

func TestClient_Get_InvalidJSON(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html>gateway timeout</html>"))
	}))
	defer mockServer.Close()

	client := testClient(mockServer.URL)
	_, err := client.Get(context.Background(), "/standings", nil)
	if err == nil {
		t.Fatal("Expected error for non-JSON response")
	}

	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("Expected *DecodeError, got %T", err)
	}
	if decodeErr.Path != "/standings" {
		t.Errorf("Expected path /standings, got %q", decodeErr.Path)
	}
}

func TestClient_Get_ServerUnavailable(t *testing.T) {
	client := testClient("http://localhost:1")
	if _, err := client.Get(context.Background(), "/teams", nil); err == nil {
		t.Fatal("Expected error when server is unavailable")
	}
}

func TestClient_Get_ContextCancelled(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer mockServer.Close()

	client := testClient(mockServer.URL)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if _, err := client.Get(ctx, "/teams", nil); err == nil {
		t.Fatal("Expected error for cancelled context")
	}
}

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient("", 0, common.NewSilentLogger())
	defer client.Close()

	if client.BaseURL() != DefaultBaseURL {
		t.Errorf("Expected default base URL %q, got %q", DefaultBaseURL, client.BaseURL())
	}
}
