package api

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/dada-sanat-akademisi/dada-sanat-akademisi-web/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type previewHandler struct {
	responder     Responder
	logger        zerolog.Logger
	site          Site
	previewSecret string
}

func newPreviewHandler(site Site, previewSecret string) previewHandler {
	logger := log.With().Str("handlerName", "previewHandler").Logger()

	return previewHandler{
		responder:     NewResponder(logger, site.Templates),
		logger:        logger,
		site:          site,
		previewSecret: previewSecret,
	}
}

// enablePreview starts a draft session when the shared secret matches, then
// redirects to the requested slug. The Studio calls this with
// ?secret=...&slug=/courses/....
func (h previewHandler) enablePreview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		secret := r.URL.Query().Get("secret")
		if h.previewSecret == "" ||
			subtle.ConstantTimeCompare([]byte(secret), []byte(h.previewSecret)) != 1 {
			h.responder.WriteError(w, errs.NewUnauthorizedError("invalid preview secret"))
			return
		}

		cookie, err := issueDraftCookie(h.previewSecret)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("could not start preview session", err))
			return
		}
		http.SetCookie(w, cookie)

		target := r.URL.Query().Get("slug")
		if target == "" || !strings.HasPrefix(target, "/") {
			target = "/"
		}
		http.Redirect(w, r, target, http.StatusTemporaryRedirect)
	}
}

// exitPreview ends the draft session and returns to the published site.
func (h previewHandler) exitPreview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, clearDraftCookie())
		http.Redirect(w, r, "/", http.StatusTemporaryRedirect)
	}
}
