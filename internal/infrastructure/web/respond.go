package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/bnema/themeroot/internal/logging"
)

var errTooManyWrites = errors.New("too many preference changes, try again later")

const (
	contentTypeHeader = "Content-Type"
	contentTypeJSON   = "application/json; charset=utf-8"
	contentTypeHTML   = "text/html; charset=utf-8"
	contentTypeText   = "text/plain; charset=utf-8"
	contentTypeJS     = "text/javascript; charset=utf-8"
)

func wantsJSON(r *http.Request) bool {
	return strings.HasPrefix(r.URL.Path, "/api/") ||
		strings.Contains(strings.ToLower(r.Header.Get(contentTypeHeader)), "application/json") ||
		strings.Contains(strings.ToLower(r.Header.Get("Accept")), "application/json")
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set(contentTypeHeader, contentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).Warn().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	if status < 400 || status >= 600 {
		status = http.StatusInternalServerError
	}
	if status >= 500 {
		logging.FromContext(r.Context()).Error().Err(err).Int("status", status).Msg("request failed")
	}

	if wantsJSON(r) {
		writeJSON(w, r, status, map[string]string{"error": err.Error()})
		return
	}
	w.Header().Set(contentTypeHeader, contentTypeText)
	w.WriteHeader(status)
	_, _ = w.Write([]byte(err.Error() + "\n"))
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	msg := "page not found"
	if wantsJSON(r) {
		msg = "endpoint not found"
	}
	writeError(w, r, http.StatusNotFound, errors.New(msg))
}

func methodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusMethodNotAllowed, errors.New(strings.ToLower(http.StatusText(http.StatusMethodNotAllowed))))
}
