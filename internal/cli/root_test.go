package cli

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"weeklog/internal/api"
	"weeklog/internal/storage"
	"weeklog/internal/weekkey"
)

const week = weekkey.Key("2025-10-06")

func TestResolveWeek(t *testing.T) {
	tests := []struct {
		name    string
		flag    string
		want    weekkey.Key
		wantErr bool
	}{
		{name: "empty means this week", flag: "", want: weekkey.ForToday()},
		{name: "last means previous week", flag: "last", want: weekkey.ForToday().Previous()},
		{name: "LAST is case-insensitive", flag: " LAST ", want: weekkey.ForToday().Previous()},
		{name: "date canonicalizes to Monday", flag: "2025-10-09", want: week},
		{name: "monday stays put", flag: "2025-10-06", want: week},
		{name: "garbage rejected", flag: "next tuesday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveWeek(tt.flag)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ResolveWeek(%q) expected error", tt.flag)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveWeek(%q): %v", tt.flag, err)
			}
			if got != tt.want {
				t.Errorf("ResolveWeek(%q) = %s, want %s", tt.flag, got, tt.want)
			}
		})
	}
}

func TestParseDay(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "short name", input: "mon", want: 0},
		{name: "short name sunday", input: "sun", want: 6},
		{name: "full name", input: "Wednesday", want: 2},
		{name: "date inside week", input: "2025-10-10", want: 4},
		{name: "date outside week", input: "2025-10-13", wantErr: true},
		{name: "nonsense", input: "someday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDay(tt.input, week)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseDay(%q) expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDay(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseDay(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestGoToAloneResetsMemoState(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"memo": map[string]string{
			"id": "m1", "date": "2025-10-07", "text": "leg day",
		}})
	}))
	defer srv.Close()

	ctx := NewContext(storage.NewMemoryStore(), api.NewClient(srv.URL, ""))
	ctx.Navigator.GoTo(week)
	if _, err := ctx.Memos.Add(context.Background(), "2025-10-07", "leg day"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if ctx.Memos.Count() != 1 {
		t.Fatal("expected the memo to be cached for the current week")
	}

	next := week.Next()
	ctx.Navigator.GoTo(next)

	if got := ctx.Memos.CurrentWeek(); got != next {
		t.Errorf("memo store week = %s, want %s", got, next)
	}
	if ctx.Memos.Count() != 0 {
		t.Error("old week's memos still cached after navigation")
	}
	if got := ctx.Exercises.CurrentWeek(); got != next {
		t.Errorf("exercise manager week = %s, want %s", got, next)
	}
}

func TestFormatDay(t *testing.T) {
	if got := FormatDay(week, 0); got != "Mon 2025-10-06" {
		t.Errorf("FormatDay = %q, want %q", got, "Mon 2025-10-06")
	}
	if got := FormatDay(week, 6); got != "Sun 2025-10-12" {
		t.Errorf("FormatDay = %q, want %q", got, "Sun 2025-10-12")
	}
}
