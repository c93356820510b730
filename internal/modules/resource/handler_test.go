package resource

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starwars/internal/database"
	"starwars/internal/domain"
	"starwars/internal/store"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

type message struct {
	Message string          `json:"message"`
	Record  json.RawMessage `json:"record"`
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, database.Migrate(db))

	reg := store.NewRegistry(db, store.Options{})

	router := gin.New()
	NewHandler[domain.Planet, domain.PlanetDraft, domain.PlanetPatch](reg.Planets, Names{Singular: "Planet", Plural: "planets"}).
		RegisterRoutes(router.Group("/planet"))
	return router
}

func doJSONRequest(r http.Handler, method, path string, body string) (*httptest.ResponseRecorder, envelope) {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	var env envelope
	_ = json.Unmarshal(rr.Body.Bytes(), &env)
	return rr, env
}

const tatooine = `{"name":"Tatooine","population":200000,"terrain":"desert","climate":"arid"}`

func TestPlanetLifecycle(t *testing.T) {
	r := setupRouter(t)

	rr, env := doJSONRequest(r, http.MethodGet, "/planet", "")
	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "EMPTY", env.Error.Code)
	assert.Equal(t, "No planets found", env.Error.Message)

	rr, env = doJSONRequest(r, http.MethodPost, "/planet", tatooine)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var created message
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "Planet created successfully", created.Message)
	var planet domain.Planet
	require.NoError(t, json.Unmarshal(created.Record, &planet))
	assert.Equal(t, int64(1), planet.ID)

	rr, env = doJSONRequest(r, http.MethodGet, "/planet/1", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, string(created.Record), string(env.Data))

	rr, env = doJSONRequest(r, http.MethodPut, "/planet/1", `{"climate":"scorching"}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var updated message
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "Planet with id 1 has been updated", updated.Message)
	assert.Contains(t, string(updated.Record), `"climate":"scorching"`)
	assert.Contains(t, string(updated.Record), `"terrain":"desert"`)

	rr, env = doJSONRequest(r, http.MethodGet, "/planet", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var list []domain.Planet
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Len(t, list, 1)

	rr, env = doJSONRequest(r, http.MethodDelete, "/planet/1", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var deleted message
	require.NoError(t, json.Unmarshal(env.Data, &deleted))
	assert.Equal(t, "Planet with id 1 has been deleted", deleted.Message)

	rr, env = doJSONRequest(r, http.MethodDelete, "/planet/1", "")
	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
	assert.Equal(t, "Planet not found", env.Error.Message)

	rr, _ = doJSONRequest(r, http.MethodGet, "/planet/1", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCreate_MissingFields(t *testing.T) {
	r := setupRouter(t)

	rr, env := doJSONRequest(r, http.MethodPost, "/planet", `{"name":"Hoth"}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.Equal(t, map[string]string{
		"population": "required",
		"terrain":    "required",
		"climate":    "required",
	}, env.Error.Details)
}

func TestBadInput(t *testing.T) {
	r := setupRouter(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		code   string
	}{
		{"non numeric id", http.MethodGet, "/planet/abc", "", "INVALID_ID"},
		{"overflowing id", http.MethodDelete, "/planet/99999999999999999999", "", "INVALID_ID"},
		{"malformed create", http.MethodPost, "/planet", `{"name":`, "INVALID_JSON"},
		{"wrong type", http.MethodPost, "/planet", strings.Replace(tatooine, "200000", `"many"`, 1), "INVALID_JSON"},
		{"malformed update", http.MethodPut, "/planet/1", `[]`, "INVALID_JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr, env := doJSONRequest(r, tt.method, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.False(t, env.Success)
			assert.Equal(t, tt.code, env.Error.Code)
		})
	}
}

func TestUpdate_NullField(t *testing.T) {
	r := setupRouter(t)

	rr, _ := doJSONRequest(r, http.MethodPost, "/planet", tatooine)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr, env := doJSONRequest(r, http.MethodPut, "/planet/1", `{"name":null}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.Equal(t, "must not be null", env.Error.Details["name"])
}

func TestUpdate_Missing(t *testing.T) {
	r := setupRouter(t)

	rr, env := doJSONRequest(r, http.MethodPut, "/planet/9", `{"name":"Hoth"}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestNonPositiveIDsAreNotFound(t *testing.T) {
	r := setupRouter(t)

	for _, path := range []string{"/planet/0", "/planet/-1"} {
		rr, env := doJSONRequest(r, http.MethodGet, path, "")
		assert.Equal(t, http.StatusNotFound, rr.Code, path)
		assert.Equal(t, "NOT_FOUND", env.Error.Code, path)

		rr, _ = doJSONRequest(r, http.MethodPut, path, `{"name":"Hoth"}`)
		assert.Equal(t, http.StatusNotFound, rr.Code, path)

		rr, _ = doJSONRequest(r, http.MethodDelete, path, "")
		assert.Equal(t, http.StatusNotFound, rr.Code, path)
	}
}
