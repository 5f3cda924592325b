package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"fitness_tracker/internal/db"
	"fitness_tracker/internal/store"
	"fitness_tracker/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testSecretKey = "test-secret-key"

type testApp struct {
	router   *gin.Engine
	database *gorm.DB
	store    *store.Store
	tokens   *utils.TokenManager
	denylist *utils.MemoryDenylist
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "fitness-api-test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(database) })
	require.NoError(t, db.Migrate(database))

	app := &testApp{
		database: database,
		store:    store.New(database),
		tokens:   utils.NewTokenManager("test-jwt-secret"),
		denylist: utils.NewMemoryDenylist(),
	}
	app.router = NewRouter(Deps{
		Store:       app.store,
		Tokens:      app.tokens,
		Denylist:    app.denylist,
		SecretKey:   testSecretKey,
		CORSOrigins: []string{"http://localhost:3000"},
	})
	return app
}

type requestOption func(*http.Request)

func withBearer(token string) requestOption {
	return func(req *http.Request) { req.Header.Set("Authorization", "Bearer "+token) }
}

func withCookie(name, value string) requestOption {
	return func(req *http.Request) { req.AddCookie(&http.Cookie{Name: name, Value: value}) }
}

func withHeader(name, value string) requestOption {
	return func(req *http.Request) { req.Header.Set(name, value) }
}

func (a *testApp) do(t *testing.T, method, path string, body any, opts ...requestOption) *httptest.ResponseRecorder {
	t.Helper()

	var payload []byte
	switch b := body.(type) {
	case nil:
	case string:
		payload = []byte(b)
	default:
		var err error
		payload, err = json.Marshal(b)
		require.NoError(t, err)
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, opt := range opts {
		opt(req)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func readError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[map[string]string](t, w)["error"]
}

// createID posts body and returns the id of the created record
func (a *testApp) createID(t *testing.T, path string, body any) uint {
	t.Helper()
	w := a.do(t, http.MethodPost, path, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[map[string]any](t, w)
	if user, ok := created["user"].(map[string]any); ok {
		created = user
	}
	id, ok := created["id"].(float64)
	require.True(t, ok, w.Body.String())
	return uint(id)
}

func (a *testApp) count(t *testing.T, table string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, a.database.Table(table).Count(&n).Error)
	return n
}

func responseCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}
