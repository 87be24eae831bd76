package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientListMemos(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/memos" {
			t.Errorf("path = %s, want /api/memos", r.URL.Path)
		}
		if got := r.URL.Query().Get("startDate"); got != "2025-10-06" {
			t.Errorf("startDate = %s, want 2025-10-06", got)
		}
		if got := r.URL.Query().Get("endDate"); got != "2025-10-12" {
			t.Errorf("endDate = %s, want 2025-10-12", got)
		}
		cookie, err := r.Cookie(sessionCookieName)
		if err != nil || cookie.Value != "tok123" {
			t.Errorf("session cookie = %v, %v; want tok123", cookie, err)
		}

		json.NewEncoder(w).Encode(map[string]any{
			"memos": []Memo{
				{ID: "m1", Date: "2025-10-06T00:00:00Z", Text: "first"},
				{ID: "m2", Date: "2025-10-07", Text: "second"},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "tok123")
	memos, err := client.ListMemos(context.Background(), "2025-10-06", "2025-10-12")
	if err != nil {
		t.Fatalf("ListMemos: %v", err)
	}
	if len(memos) != 2 || memos[0].ID != "m1" || memos[1].Text != "second" {
		t.Errorf("memos = %+v", memos)
	}
}

func TestClientCreateMemo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["date"] != "2025-10-06" || body["text"] != "hello" {
			t.Errorf("body = %v", body)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"memo": Memo{ID: "m9", Date: body["date"], Text: body["text"]},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	memo, err := client.CreateMemo(context.Background(), "2025-10-06", "hello")
	if err != nil {
		t.Fatalf("CreateMemo: %v", err)
	}
	if memo.ID != "m9" {
		t.Errorf("memo.ID = %s, want m9", memo.ID)
	}
}

func TestClientCreateMemoRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "date and text are required"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	if _, err := client.CreateMemo(context.Background(), "", "hello"); err == nil {
		t.Fatal("expected error for 400 response")
	}
}

func TestClientDeleteMemo(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if r.Method != http.MethodDelete {
			t.Errorf("method = %s, want DELETE", r.Method)
		}
		json.NewEncoder(w).Encode(map[string]any{"success": true, "id": "m1"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	if err := client.DeleteMemo(context.Background(), "m1"); err != nil {
		t.Fatalf("DeleteMemo: %v", err)
	}
	if gotPath != "/api/memos/m1" {
		t.Errorf("path = %s, want /api/memos/m1", gotPath)
	}
}

func TestClientDeleteMemoNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	if err := client.DeleteMemo(context.Background(), "missing"); err == nil {
		t.Fatal("expected error for 404 response")
	}
}

func TestClientFetchDocumentNormalizes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/data" {
			t.Errorf("path = %s, want /api/data", r.URL.Path)
		}
		// Minimal payload with maps omitted; Normalize must repair them.
		w.Write([]byte(`{"version":"1.0","masterExercises":[]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	doc, err := client.FetchDocument(context.Background())
	if err != nil {
		t.Fatalf("FetchDocument: %v", err)
	}
	if doc.WeeklyExercises == nil || doc.MealsByWeek == nil {
		t.Error("fetched document should have non-nil maps after normalization")
	}
}
