package httpapi

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/checkball/checkball/internal/usecase"
)

const (
	widgetConfigCookie = "sports_config"
	widgetConfigMaxAge = 365 * 24 * 60 * 60
	// Hard cap on the config payload. The widget layout is a small JSON
	// object; anything near this size is abuse.
	widgetConfigMaxBytes = 10 * 1024
)

// SaveWidgetConfig persists the dashboard layout in a client cookie. The
// payload must be a JSON object; the cookie value is base64 so quoting
// survives the round trip.
func (h *Handler) SaveWidgetConfig(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveWidgetConfig")
	defer span.End()

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, widgetConfigMaxBytes))
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: config payload too large or unreadable", usecase.ErrInvalidInput))
		return
	}

	var config map[string]any
	if err := sonic.Unmarshal(body, &config); err != nil || config == nil {
		writeError(ctx, w, fmt.Errorf("%w: config must be a JSON object", usecase.ErrInvalidInput))
		return
	}

	encoded, err := sonic.Marshal(config)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: config could not be encoded", usecase.ErrInvalidInput))
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     widgetConfigCookie,
		Value:    base64.URLEncoding.EncodeToString(encoded),
		Path:     "/",
		MaxAge:   widgetConfigMaxAge,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "saved"})
}

// LoadWidgetConfig returns the stored layout. A missing or malformed
// cookie loads as an empty object so the dashboard falls back to its
// defaults instead of erroring.
func (h *Handler) LoadWidgetConfig(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.LoadWidgetConfig")
	defer span.End()

	config := map[string]any{}

	if cookie, err := r.Cookie(widgetConfigCookie); err == nil {
		if raw, err := base64.URLEncoding.DecodeString(cookie.Value); err == nil {
			var stored map[string]any
			if err := sonic.Unmarshal(raw, &stored); err == nil && stored != nil {
				config = stored
			} else {
				h.logger.WarnContext(ctx, "widget config cookie is malformed, resetting")
			}
		}
	}

	writeSuccess(ctx, w, http.StatusOK, config)
}
