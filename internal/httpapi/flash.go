package httpapi

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"fyyur/internal/web"
)

const flashCookie = "fyyur_flash"

const (
	flashSuccess = "success"
	flashError   = "error"
)

// setFlash stores a message for the next rendered page.
func setFlash(w http.ResponseWriter, flash web.Flash) {
	raw, err := json.Marshal(flash)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    base64.RawURLEncoding.EncodeToString(raw),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// takeFlash returns the pending message, if any, and clears it.
func takeFlash(w http.ResponseWriter, r *http.Request) *web.Flash {
	cookie, err := r.Cookie(flashCookie)
	if err != nil {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	raw, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}
	var flash web.Flash
	if err := json.Unmarshal(raw, &flash); err != nil || flash.Message == "" {
		return nil
	}
	return &flash
}
