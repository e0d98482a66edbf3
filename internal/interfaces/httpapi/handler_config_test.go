package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newConfigRouter() http.Handler {
	return newTestRouter(&stubProvider{})
}

func TestWidgetConfig_SaveAndLoad(t *testing.T) {
	t.Parallel()

	router := newConfigRouter()

	body := `{"sport":"nba","team":"Boston Celtics","theme":"dark"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/widget-config", strings.NewReader(body)))
	if rec.Code != http.StatusOK {
		t.Fatalf("save status got=%d want=200 body=%s", rec.Code, rec.Body.String())
	}

	cookies := rec.Result().Cookies()
	var saved *http.Cookie
	for _, cookie := range cookies {
		if cookie.Name == widgetConfigCookie {
			saved = cookie
		}
	}
	if saved == nil {
		t.Fatalf("expected %q cookie, got %v", widgetConfigCookie, cookies)
	}
	if !saved.HttpOnly || !saved.Secure || saved.SameSite != http.SameSiteLaxMode {
		t.Fatalf("cookie attributes got=%+v", saved)
	}
	if saved.MaxAge != widgetConfigMaxAge {
		t.Fatalf("cookie max age got=%d want=%d", saved.MaxAge, widgetConfigMaxAge)
	}

	loadReq := httptest.NewRequest(http.MethodGet, "/v1/widget-config", nil)
	loadReq.AddCookie(saved)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, loadReq)
	if rec.Code != http.StatusOK {
		t.Fatalf("load status got=%d want=200", rec.Code)
	}

	data, ok := decodeEnvelope(t, rec).Data.(map[string]any)
	if !ok {
		t.Fatalf("data got=%v", rec.Body.String())
	}
	if data["team"] != "Boston Celtics" || data["theme"] != "dark" {
		t.Fatalf("loaded config got=%v", data)
	}
}

func TestWidgetConfig_SaveRejectsNonObject(t *testing.T) {
	t.Parallel()

	router := newConfigRouter()

	for _, body := range []string{`not json`, `[1,2,3]`, `"just a string"`, `null`, ``} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/widget-config", strings.NewReader(body)))
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %q status got=%d want=400", body, rec.Code)
		}
	}
}

func TestWidgetConfig_SaveRejectsOversizedBody(t *testing.T) {
	t.Parallel()

	router := newConfigRouter()

	huge := `{"padding":"` + strings.Repeat("x", widgetConfigMaxBytes) + `"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/widget-config", strings.NewReader(huge)))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status got=%d want=400", rec.Code)
	}
}

func TestWidgetConfig_LoadWithoutCookie(t *testing.T) {
	t.Parallel()

	router := newConfigRouter()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/widget-config", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status got=%d want=200", rec.Code)
	}
	data, ok := decodeEnvelope(t, rec).Data.(map[string]any)
	if !ok || len(data) != 0 {
		t.Fatalf("expected empty config, got %v", data)
	}
}

func TestWidgetConfig_LoadMalformedCookie(t *testing.T) {
	t.Parallel()

	router := newConfigRouter()

	tests := []struct {
		name  string
		value string
	}{
		{name: "not base64", value: "%%%%"},
		{name: "base64 of garbage", value: "bm90LWpzb24"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, "/v1/widget-config", nil)
			req.AddCookie(&http.Cookie{Name: widgetConfigCookie, Value: tt.value})
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("status got=%d want=200", rec.Code)
			}
			data, ok := decodeEnvelope(t, rec).Data.(map[string]any)
			if !ok || len(data) != 0 {
				t.Fatalf("malformed cookie must load as empty config, got %v", data)
			}
		})
	}
}
