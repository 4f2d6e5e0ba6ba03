package api

import (
	"net/http"

	"github.com/dada-sanat-akademisi/dada-sanat-akademisi-web/cms"
	"github.com/dada-sanat-akademisi/dada-sanat-akademisi-web/content"
	"github.com/dada-sanat-akademisi/dada-sanat-akademisi-web/services"
	"github.com/dada-sanat-akademisi/dada-sanat-akademisi-web/templates"
)

// Site bundles the dependencies every handler shares. The CMS handles are
// constructed once at startup and may be nil when the content source is
// unconfigured; handlers treat nil as "feature unavailable, render fallback".
type Site struct {
	Content   *cms.CMS // published perspective
	Preview   *cms.CMS // drafts perspective, only used in draft mode
	Pages     *content.Library
	Templates *templates.Set
	Mailer    *services.Mailer
	Config    map[string]string
}

// ContentFor picks the CMS handle for a request: the preview client when
// draft mode is active and configured, the published client otherwise.
// Either may be nil.
func (s Site) ContentFor(r *http.Request) *cms.CMS {
	if draftModeFromCtx(r.Context()) && s.Preview != nil {
		return s.Preview
	}
	return s.Content
}
