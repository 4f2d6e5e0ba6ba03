package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func TestEnablePreviewRejectsWrongSecret(t *testing.T) {
	handler := newTestHandler(t, nil)

	rec := get(t, handler, "/api/preview?secret=wrong")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, findCookie(t, rec, draftCookieName))
}

func TestEnablePreviewIssuesSignedCookie(t *testing.T) {
	handler := newTestHandler(t, nil)

	rec := get(t, handler, "/api/preview?secret="+testPreviewSecret+"&slug=/courses/piyano")

	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "/courses/piyano", rec.Header().Get("Location"))

	cookie := findCookie(t, rec, draftCookieName)
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	assert.NotEmpty(t, cookie.Value)

	// The issued value must verify against the same secret.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	assert.True(t, draftCookieValid(req, testPreviewSecret))
	assert.False(t, draftCookieValid(req, "some-other-secret"))
}

func TestEnablePreviewRejectsOffsiteRedirect(t *testing.T) {
	handler := newTestHandler(t, nil)

	rec := get(t, handler, "/api/preview?secret="+testPreviewSecret+"&slug=https://evil.example.com")

	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestExitPreviewClearsCookie(t *testing.T) {
	handler := newTestHandler(t, nil)

	rec := get(t, handler, "/api/exit-preview")

	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	cookie := findCookie(t, rec, draftCookieName)
	require.NotNil(t, cookie)
	assert.Less(t, cookie.MaxAge, 0)
}

func TestDraftModeStampsNoIndexHeader(t *testing.T) {
	handler := newTestHandler(t, nil)

	cookie, err := issueDraftCookie(testPreviewSecret)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "noindex, nofollow", rec.Header().Get("X-Robots-Tag"))
	assert.Contains(t, rec.Body.String(), "draft-banner")
}

func TestNoDraftModeWithoutCookie(t *testing.T) {
	handler := newTestHandler(t, nil)

	rec := get(t, handler, "/")

	assert.Empty(t, rec.Header().Get("X-Robots-Tag"))
	assert.NotContains(t, rec.Body.String(), "draft-banner")
}

func TestForgedDraftCookieIgnored(t *testing.T) {
	handler := newTestHandler(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: draftCookieName, Value: "not-a-jwt"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("X-Robots-Tag"))
}

func TestDraftModeQueriesDraftsPerspective(t *testing.T) {
	var perspectives []string
	handler := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		perspectives = append(perspectives, r.URL.Query().Get("perspective"))
		w.Write([]byte(`{"result":[]}`))
	})

	// Published request first.
	get(t, handler, "/courses")

	// Then the same route in draft mode.
	cookie, err := issueDraftCookie(testPreviewSecret)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/courses", nil)
	req.AddCookie(cookie)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.Len(t, perspectives, 2)
	assert.Equal(t, "published", perspectives[0])
	assert.Equal(t, "drafts", perspectives[1])
}
