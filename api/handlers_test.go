package api

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/dada-sanat-akademisi/dada-sanat-akademisi-web/cms"
	"github.com/dada-sanat-akademisi/dada-sanat-akademisi-web/content"
	"github.com/dada-sanat-akademisi/dada-sanat-akademisi-web/services"
	"github.com/dada-sanat-akademisi/dada-sanat-akademisi-web/templates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPreviewSecret = "test-preview-secret"

// newTestHandler builds the full route tree. When backend is nil the content
// source is left unconfigured, which is itself a scenario under test.
func newTestHandler(t *testing.T, backend http.HandlerFunc) http.Handler {
	t.Helper()

	cfg := map[string]string{
		"APP_ENV":             "development",
		"SITE_PREVIEW_SECRET": testPreviewSecret,
	}
	if backend != nil {
		server := httptest.NewServer(backend)
		t.Cleanup(server.Close)
		cfg["SANITY_PROJECT_ID"] = "testproject"
		cfg["SANITY_DATASET"] = "production"
		cfg["SANITY_BASE_URL"] = server.URL
	}

	pages, err := content.Load()
	require.NoError(t, err)
	tmpl, err := templates.Load()
	require.NoError(t, err)

	site := Site{
		Content:   cms.New(cms.NewClient(cfg)),
		Preview:   cms.New(cms.NewPreviewClient(cfg)),
		Pages:     pages,
		Templates: tmpl,
		Mailer:    services.NewMailer(cfg),
		Config:    cfg,
	}

	return newRouter(site, withConfig(cfg))
}

func get(t *testing.T, handler http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHomeWithoutContentSource(t *testing.T) {
	handler := newTestHandler(t, nil)

	rec := get(t, handler, "/")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"EducationalOrganization"`)
	assert.Contains(t, body, `<meta name="robots" content="index, follow">`)
	assert.Contains(t, body, "empty-state")
}

func TestCourseListingDegradesOnBackendFailure(t *testing.T) {
	handler := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	rec := get(t, handler, "/courses")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "empty-state")
}

func TestCourseDetail(t *testing.T) {
	handler := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":{"_id":"c1","title":"Piyano","description":"Temel piyano","slug":"piyano","category":"Müzik","level":"Başlangıç"}}`))
	})

	rec := get(t, handler, "/courses/piyano")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Piyano")
	assert.Contains(t, body, "Müzik")
	assert.Contains(t, body, "Başlangıç")
	assert.Contains(t, body, `"BreadcrumbList"`)
	assert.Contains(t, body, `"@type":"Course"`)
	assert.Contains(t, body, `<link rel="canonical" href="https://dadasanatakademisi.com/courses/piyano">`)
}

func TestCourseDetailNotFound(t *testing.T) {
	handler := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":null}`))
	})

	rec := get(t, handler, "/courses/yok")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Kurs Bulunamadı")
	assert.Contains(t, body, `<meta name="robots" content="noindex, nofollow">`)
}

func TestCourseDetailWithoutContentSource(t *testing.T) {
	handler := newTestHandler(t, nil)

	rec := get(t, handler, "/courses/piyano")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAnnouncementCTARendering(t *testing.T) {
	tests := []struct {
		name    string
		result  string
		wantCTA bool
	}{
		{
			"both fields present",
			`{"result":{"_id":"a1","title":"Yaz Okulu","slug":"yaz-okulu","ctaText":"Kayıt Ol","ctaLink":"/apply"}}`,
			true,
		},
		{
			"link missing",
			`{"result":{"_id":"a1","title":"Yaz Okulu","slug":"yaz-okulu","ctaText":"Kayıt Ol"}}`,
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.result))
			})

			rec := get(t, handler, "/announcements/yaz-okulu")
			require.Equal(t, http.StatusOK, rec.Code)

			if tt.wantCTA {
				assert.Contains(t, rec.Body.String(), `class="cta"`)
			} else {
				assert.NotContains(t, rec.Body.String(), `class="cta"`)
			}
		})
	}
}

func TestUnknownRouteRendersNotFoundPage(t *testing.T) {
	handler := newTestHandler(t, nil)

	rec := get(t, handler, "/no-such-route")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sayfa Bulunamadı")
}

func TestInfoPages(t *testing.T) {
	handler := newTestHandler(t, nil)

	for _, path := range []string{"/academy", "/contact", "/kurucular", "/koro"} {
		rec := get(t, handler, path)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestApplyFormDegradesWithoutMailer(t *testing.T) {
	handler := newTestHandler(t, nil)

	form := url.Values{"name": {"Ayşe"}, "email": {"[email protected]"}}
	req := httptest.NewRequest(http.MethodPost, "/apply", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "iletilemedi")
}

func TestApplyFormRequiresNameAndEmail(t *testing.T) {
	handler := newTestHandler(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/apply", strings.NewReader("name=Ay%C5%9Fe"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "zorunludur")
}

func TestSitemapRoute(t *testing.T) {
	handler := newTestHandler(t, nil)

	rec := get(t, handler, "/sitemap.xml")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/xml; charset=utf-8", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, "<urlset")
	assert.Contains(t, body, "https://dadasanatakademisi.com/courses")
}

func TestRobotsRoute(t *testing.T) {
	handler := newTestHandler(t, nil)

	rec := get(t, handler, "/robots.txt")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Disallow: /api/")
}

func TestStaticAssetRoute(t *testing.T) {
	handler := newTestHandler(t, nil)

	rec := get(t, handler, "/static/site.css")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "site-header")
}
