package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"

	"github.com/dada-sanat-akademisi/dada-sanat-akademisi-web/errs"
	"github.com/dada-sanat-akademisi/dada-sanat-akademisi-web/models"
	"github.com/dada-sanat-akademisi/dada-sanat-akademisi-web/seo"
	"github.com/dada-sanat-akademisi/dada-sanat-akademisi-web/templates"
	"github.com/rs/zerolog"
)

// pageData carries the fields every page template expects; page-specific
// data structs embed it.
type pageData struct {
	Meta        seo.PageMeta
	JSONLD      []template.HTML
	Breadcrumbs []models.Breadcrumb
	DraftMode   bool
}

func newPageData(r *http.Request, meta seo.PageMeta, docs ...seo.Document) pageData {
	data := pageData{
		Meta:      meta,
		DraftMode: draftModeFromCtx(r.Context()),
	}
	for _, doc := range docs {
		if script := seo.Script(doc); script != "" {
			data.JSONLD = append(data.JSONLD, script)
		}
	}
	return data
}

type Responder struct {
	logger    zerolog.Logger
	templates *templates.Set
}

func NewResponder(logger zerolog.Logger, templates *templates.Set) Responder {
	return Responder{logger, templates}
}

// RenderPage executes a page template into a buffer first so a template
// failure can still produce a clean 500 instead of a torn response.
func (r Responder) RenderPage(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := r.templates.Render(&buf, name, data); err != nil {
		r.logger.Error().Err(err).Str("template", name).Msg("error rendering page")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// RenderNotFound is the terminal outcome for any absent record: the standard
// not-found page with no-index metadata and a 404 status.
func (r Responder) RenderNotFound(w http.ResponseWriter, req *http.Request, entityLabel string) {
	data := newPageData(req, seo.NotFoundMeta(entityLabel))
	r.RenderPage(w, http.StatusNotFound, "notfound.html", data)
}

func (r Responder) WriteJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	jsonData, err := json.Marshal(data)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

func (r Responder) WriteError(w http.ResponseWriter, err error) {
	var siteErr *errs.SiteErr

	// For unexpected errors, log and return a generic internal error
	if !errors.As(err, &siteErr) {
		r.logger.Error().Msg(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		r.WriteJSON(w, map[string]any{
			"error":  "Internal Server Error",
			"status": "error",
		})
		return
	}

	response := map[string]any{
		"error":  siteErr.Error(),
		"status": "error",
	}
	if siteErr.Details != "" {
		response["details"] = siteErr.Details
	}
	if siteErr.Cause != nil {
		response["cause"] = siteErr.GetFullError()
	}

	w.WriteHeader(siteErr.StatusCode)
	r.WriteJSON(w, response)
}
