package cms

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dada-sanat-akademisi/dada-sanat-akademisi-web/errs"
	"github.com/dada-sanat-akademisi/dada-sanat-akademisi-web/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(baseURL string) map[string]string {
	return map[string]string{
		"SANITY_PROJECT_ID": "testproject",
		"SANITY_DATASET":    "production",
		"SANITY_BASE_URL":   baseURL,
		"APP_ENV":           "development",
	}
}

func TestNewClientMissingConfiguration(t *testing.T) {
	assert.Nil(t, NewClient(map[string]string{}))
	assert.Nil(t, NewClient(map[string]string{"SANITY_PROJECT_ID": "p"}))
	assert.Nil(t, NewClient(map[string]string{"SANITY_DATASET": "d"}))
	assert.Nil(t, NewPreviewClient(map[string]string{}))
}

func TestNewCMSNilClient(t *testing.T) {
	assert.Nil(t, New(nil))
}

func TestNewPreviewClientPerspective(t *testing.T) {
	cfg := testConfig("")
	cfg["SANITY_API_TOKEN"] = "secret-token"

	client := NewPreviewClient(cfg)
	require.NotNil(t, client)
	assert.Equal(t, "drafts", client.perspective)
	assert.False(t, client.useCDN)
	assert.Equal(t, "secret-token", client.token)

	// The published client is untouched.
	published := NewClient(cfg)
	assert.Equal(t, "published", published.perspective)
	assert.Empty(t, published.token)
}

func TestFetchDecodesResultEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2024-01-01/data/query/production", r.URL.Path)
		assert.Equal(t, "published", r.URL.Query().Get("perspective"))
		assert.NotEmpty(t, r.URL.Query().Get("query"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"result":[{"_id":"c1","title":"Piyano","slug":"piyano"}]}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))
	require.NotNil(t, client)

	var courses []models.Course
	err := client.Fetch(context.Background(), `*[_type == "course"]`, nil, &courses)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "Piyano", courses[0].Title)
}

func TestFetchEncodesParamsAsJSONLiterals(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, `"piyano"`, r.URL.Query().Get("$slug"))
		w.Write([]byte(`{"result":null}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))
	var course models.Course
	err := client.Fetch(context.Background(), `*[slug.current == $slug][0]`,
		map[string]string{"slug": "piyano"}, &course)
	require.NoError(t, err)
}

func TestFetchNullResultLeavesOutUntouched(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":null}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	var course models.Course
	err := client.Fetch(context.Background(), `*[0]`, nil, &course)
	require.NoError(t, err)
	assert.Empty(t, course.ID)
}

func TestFetchErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"query parse error"}`, http.StatusBadRequest)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	var out []models.Course
	err := client.Fetch(context.Background(), `*[`, nil, &out)
	require.Error(t, err)
	assert.True(t, errs.IsCMSQuery(err))
	assert.Contains(t, err.Error(), "production")
}

func TestFetchUnreachableHost(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := NewClient(testConfig(server.URL))

	var out []models.Course
	err := client.Fetch(context.Background(), `*`, nil, &out)
	assert.Error(t, err)
}

func TestFetchSendsBearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
		assert.Equal(t, "drafts", r.URL.Query().Get("perspective"))
		w.Write([]byte(`{"result":[]}`))
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	cfg["SANITY_API_TOKEN"] = "secret-token"
	client := NewPreviewClient(cfg)

	var out []models.Course
	require.NoError(t, client.Fetch(context.Background(), `*`, nil, &out))
}
