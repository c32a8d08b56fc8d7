package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"strings"

	"github.com/bnema/themeroot/assets"
	"github.com/bnema/themeroot/internal/application/port"
	"github.com/bnema/themeroot/internal/application/usecase"
	"github.com/bnema/themeroot/internal/domain/entity"
	"github.com/bnema/themeroot/internal/infrastructure/document"
)

const maxBodyBytes = 4 << 10

type pageData struct {
	Title     string
	RootClass string
	Script    template.JS
	Mode      entity.PreferenceMode
	Reason    entity.DecisionReason
}

// ThemeResponse is the body of the /api/theme endpoints.
type ThemeResponse struct {
	Preference entity.PreferenceMode `json:"preference"`
	Stored     *string               `json:"stored"`
	Decision   entity.ThemeDecision  `json:"decision"`
	Root       string                `json:"root"`
}

// ThemeRequest is the body accepted by PUT /api/theme.
type ThemeRequest struct {
	Preference string `json:"preference"`
}

// resolve runs the resolver for one request against the configured root classes.
func (s *Server) resolve(r *http.Request, store port.PreferenceStore) (*document.MemoryRoot, entity.ThemeDecision) {
	root := document.NewMemoryRoot(s.opts.RootClasses...)
	uc := usecase.NewApplyThemeUseCase(store, s.appearance, s.opts.StorageKey)
	return root, uc.Execute(r.Context(), root)
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	store := s.storeFor(w, r)
	root, decision := s.resolve(r, store)

	mode, err := usecase.NewManagePreferenceUseCase(store, s.opts.StorageKey).Mode(r.Context())
	if err != nil {
		mode = entity.PreferenceSystem
	}

	var buf bytes.Buffer
	err = s.page.Execute(&buf, pageData{
		Title:     s.opts.Title,
		RootClass: root.String(),
		Script:    template.JS(assets.ThemeScript),
		Mode:      mode,
		Reason:    decision.Reason,
	})
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, fmt.Errorf("render page: %w", err))
		return
	}

	w.Header().Set(contentTypeHeader, contentTypeHTML)
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		writeError(w, r, http.StatusBadRequest, fmt.Errorf("invalid form: %w", err))
		return
	}

	uc := usecase.NewManagePreferenceUseCase(s.storeFor(w, r), s.opts.StorageKey)
	if _, err := uc.SetString(r.Context(), r.PostForm.Get("preference")); err != nil {
		s.writeSetError(w, r, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleScript(w http.ResponseWriter, r *http.Request) {
	h := w.Header()
	h.Set("ETag", s.scriptETag)
	h.Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(s.opts.StaticCacheTTL.Seconds())))

	if match := r.Header.Get("If-None-Match"); match != "" && strings.Contains(match, s.scriptETag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	h.Set(contentTypeHeader, contentTypeJS)
	_, _ = io.WriteString(w, assets.ThemeScript)
}

func (s *Server) handleGetTheme(w http.ResponseWriter, r *http.Request) {
	s.writeTheme(w, r, s.storeFor(w, r), http.StatusOK)
}

func (s *Server) handlePutTheme(w http.ResponseWriter, r *http.Request) {
	var req ThemeRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	store := s.storeFor(w, r)
	if _, err := usecase.NewManagePreferenceUseCase(store, s.opts.StorageKey).SetString(r.Context(), req.Preference); err != nil {
		s.writeSetError(w, r, err)
		return
	}
	s.writeTheme(w, r, store, http.StatusOK)
}

func (s *Server) writeTheme(w http.ResponseWriter, r *http.Request, store port.PreferenceStore, status int) {
	manage := usecase.NewManagePreferenceUseCase(store, s.opts.StorageKey)
	pref, err := manage.Get(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	mode, _ := manage.Mode(r.Context())
	root, decision := s.resolve(r, store)

	resp := ThemeResponse{
		Preference: mode,
		Decision:   decision,
		Root:       root.String(),
	}
	if pref.Present {
		v := pref.Value
		resp.Stored = &v
	}
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, r, status, resp)
}

func (s *Server) writeSetError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, entity.ErrInvalidPreference) {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	writeError(w, r, http.StatusInternalServerError, err)
}
