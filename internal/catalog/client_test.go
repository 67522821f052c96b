package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL)
}

func TestListThemes(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/themes" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": "corporate_blue", "name": "corporate_blue", "displayName": "Corporate Blue", "category": "professional"},
			{"id": "night_shift", "name": "night_shift", "displayName": "Night Shift", "category": "accessibility"}
		]`))
	})

	themes, err := client.ListThemes(context.Background())
	if err != nil {
		t.Fatalf("ListThemes() error: %v", err)
	}
	if len(themes) != 2 {
		t.Fatalf("ListThemes() returned %d themes, want 2", len(themes))
	}
	if themes[0].ID != "corporate_blue" {
		t.Errorf("themes[0].ID = %q, want corporate_blue", themes[0].ID)
	}
	if themes[1].DisplayName != "Night Shift" {
		t.Errorf("themes[1].DisplayName = %q, want Night Shift", themes[1].DisplayName)
	}
}

func TestListThemesServerError(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := client.ListThemes(context.Background())
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("ListThemes() error = %v, want ErrUnavailable", err)
	}
}

func TestGetTheme(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/themes/corporate_blue" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "corporate_blue",
			"name": "corporate_blue",
			"displayName": "Corporate Blue",
			"colorScheme": {
				"light": {"primary": "#1e40af", "background": "#ffffff", "text": "#0f172a"},
				"dark": {"primary": "#6366f1", "background": "#0f172a", "text": "#f1f5f9"}
			}
		}`))
	})

	record, err := client.GetTheme(context.Background(), "corporate_blue")
	if err != nil {
		t.Fatalf("GetTheme() error: %v", err)
	}
	if record.ID != "corporate_blue" {
		t.Errorf("record.ID = %q, want corporate_blue", record.ID)
	}
	light := record.ColorsFor("light")
	if light["primary"] != "#1e40af" {
		t.Errorf("light primary = %q, want #1e40af", light["primary"])
	}
	dark := record.ColorsFor("dark")
	if dark["background"] != "#0f172a" {
		t.Errorf("dark background = %q, want #0f172a", dark["background"])
	}
}

func TestGetThemeErrors(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		wantErr    error
	}{
		{name: "not found", statusCode: http.StatusNotFound, wantErr: ErrNotFound},
		{name: "server error", statusCode: http.StatusInternalServerError, wantErr: ErrUnavailable},
		{name: "bad gateway", statusCode: http.StatusBadGateway, wantErr: ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "nope", tt.statusCode)
			})
			_, err := client.GetTheme(context.Background(), "missing")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("GetTheme() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestGetThemeTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	client := NewClient(srv.URL)
	srv.Close() // connection refused from here on

	_, err := client.GetTheme(context.Background(), "corporate_blue")
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("GetTheme() after server close = %v, want ErrUnavailable", err)
	}
}

func TestGetThemeWithoutColorScheme(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": "plain", "name": "plain", "displayName": "Plain"}`))
	})

	record, err := client.GetTheme(context.Background(), "plain")
	if err != nil {
		t.Fatalf("GetTheme() error: %v", err)
	}
	if record.ColorsFor("light") != nil || record.ColorsFor("dark") != nil {
		t.Error("record without colorScheme should yield nil color sets")
	}
}

func TestClientEmptyBaseURL(t *testing.T) {
	client := &Client{}
	if _, err := client.ListThemes(context.Background()); !errors.Is(err, ErrUnavailable) {
		t.Errorf("empty base URL error = %v, want ErrUnavailable", err)
	}
}
