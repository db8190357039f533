package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/splitledger/splitledger/internal/service"
	"github.com/splitledger/splitledger/internal/storage/sqlite"
)

// setupTestServer creates a test server backed by a temp SQLite database.
func setupTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "splitledger-http-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := sqlite.New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	srv := NewServer(Services{
		Users:       service.NewUserService(store),
		Groups:      service.NewGroupService(store),
		Expenses:    service.NewExpenseService(store),
		Settlements: service.NewSettlementService(store),
		Analytics:   service.NewAnalyticsService(store),
		Payments:    service.NewPaymentService(store),
	})
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, ts *httptest.Server, path string, body any) (*http.Response, map[string]any) {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	resp, err := http.Post(ts.URL+path, "application/json", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("POST %s failed: %v", path, err)
	}
	return resp, decodeBody(t, resp)
}

func getJSON(t *testing.T, ts *httptest.Server, path string) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := http.Get(ts.URL + path)
	if err != nil {
		t.Fatalf("GET %s failed: %v", path, err)
	}
	return resp, decodeBody(t, resp)
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil // list responses decode elsewhere
	}
	return body
}

func TestAPI_SettlementFlow(t *testing.T) {
	ts := setupTestServer(t)

	for _, u := range []string{"A", "B", "C"} {
		resp, _ := postJSON(t, ts, "/api/users/create", map[string]string{"username": u})
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("create user %s: status %d", u, resp.StatusCode)
		}
	}

	resp, created := postJSON(t, ts, "/api/groups/create", map[string]string{
		"groupName": "Trip", "username": "A",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create group: status %d", resp.StatusCode)
	}
	groupID := created["id"].(string)

	for _, member := range []string{"B", "C"} {
		resp, _ := postJSON(t, ts, "/api/groups/add-member", map[string]string{
			"groupId": groupID, "memberName": member,
		})
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("add member %s: status %d", member, resp.StatusCode)
		}
	}

	resp, _ = postJSON(t, ts, "/api/expenses/create", map[string]any{
		"groupId": groupID,
		"title":   "Fuel",
		"amount":  30.00,
		"date":    "2024-03-01",
		"paidBy":  "A",
		"split":   map[string]any{"type": "equal"},
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create expense: status %d", resp.StatusCode)
	}

	resp, settlement := getJSON(t, ts, "/api/settlements/suggest?groupId="+groupID)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("suggest: status %d", resp.StatusCode)
	}
	if settlement["groupName"] != "Trip" {
		t.Errorf("expected groupName Trip, got %v", settlement["groupName"])
	}
	transfers := settlement["transfers"].([]any)
	if len(transfers) != 2 {
		t.Fatalf("expected 2 transfers, got %d", len(transfers))
	}
	first := transfers[0].(map[string]any)
	if first["from"] != "B" || first["to"] != "A" || first["amount"] != 10.00 {
		t.Errorf("unexpected first transfer: %v", first)
	}
}

func TestAPI_ErrorTaxonomy(t *testing.T) {
	ts := setupTestServer(t)

	tests := []struct {
		name       string
		method     string
		path       string
		body       any
		wantStatus int
	}{
		{"unknown user is 404", http.MethodGet, "/api/summary?user=ghost", nil, http.StatusNotFound},
		{"missing username is 400", http.MethodGet, "/api/summary", nil, http.StatusBadRequest},
		{"missing settle params is 400", http.MethodGet, "/api/settlements/suggest", nil, http.StatusBadRequest},
		{"unknown group is 404", http.MethodGet, "/api/settlements/suggest?groupId=missing", nil, http.StatusNotFound},
		{"blank user create is 400", http.MethodPost, "/api/users/create", map[string]string{"username": " "}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp *http.Response
			if tt.method == http.MethodGet {
				resp, _ = getJSON(t, ts, tt.path)
			} else {
				resp, _ = postJSON(t, ts, tt.path, tt.body)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, resp.StatusCode)
			}
		})
	}

	t.Run("duplicate user is 409", func(t *testing.T) {
		if resp, _ := postJSON(t, ts, "/api/users/create", map[string]string{"username": "dup"}); resp.StatusCode != http.StatusCreated {
			t.Fatalf("first create: status %d", resp.StatusCode)
		}
		resp, _ := postJSON(t, ts, "/api/users/create", map[string]string{"username": "dup"})
		if resp.StatusCode != http.StatusConflict {
			t.Errorf("expected 409, got %d", resp.StatusCode)
		}
	})
}

func TestAPI_SummaryShape(t *testing.T) {
	ts := setupTestServer(t)

	postJSON(t, ts, "/api/users/create", map[string]string{"username": "solo"})
	resp, created := postJSON(t, ts, "/api/groups/create", map[string]string{
		"groupName": "Self", "username": "solo",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create group: status %d", resp.StatusCode)
	}
	groupID := created["id"].(string)

	postJSON(t, ts, "/api/expenses/create", map[string]any{
		"groupId": groupID,
		"title":   "Lunch",
		"amount":  12.50,
		"date":    "2024-03-01",
		"paidBy":  "solo",
	})

	resp, summary := getJSON(t, ts, "/api/summary?user=solo")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("summary: status %d", resp.StatusCode)
	}
	if summary["total"] != 12.50 {
		t.Errorf("expected total 12.50, got %v", summary["total"])
	}
	quick := summary["quick"].(map[string]any)
	if quick["countRecent"] != float64(1) || quick["avgRecent"] != 12.50 {
		t.Errorf("unexpected quick stats: %v", quick)
	}

	resp, overview := getJSON(t, ts, "/api/analytics/overview?user=solo")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("overview: status %d", resp.StatusCode)
	}
	monthly := overview["monthly"].([]any)
	if len(monthly) != 6 {
		t.Errorf("expected 6 monthly buckets, got %d", len(monthly))
	}
}
