package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http/httptest"
	"path/filepath"
	"recipe-api/db"
	"recipe-api/model"
	"recipe-api/pkg/util"
	"recipe-api/storage"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func newTestAPI(t *testing.T) *API {
	t.Helper()

	gin.SetMode(gin.TestMode)

	tmp := t.TempDir()
	viper.Set("db.driver", "sqlite")
	viper.Set("db.dsn", filepath.Join(tmp, "test.db"))
	viper.Set("storage.type", "local")
	viper.Set("storage.media_root", filepath.Join(tmp, "media"))
	viper.Set("upload.max_size", int64(10<<20))

	d, err := db.New()
	require.NoError(t, err)

	s, err := storage.NewLocal(viper.GetString("storage.media_root"))
	require.NoError(t, err)

	return New(d, s)
}

// seedUser creates a user with an auth token straight in the database,
// bypassing the signup endpoints, and returns the user plus token key.
func seedUser(t *testing.T, a *API, email string) (*model.User, string) {
	t.Helper()

	hash, err := a.Hasher.HashPassword("testpass123")
	require.NoError(t, err)

	user := model.User{
		ID:           util.RandStr(16),
		Email:        email,
		Name:         "Test User",
		PasswordHash: hash,
		Active:       true,
	}
	require.NoError(t, a.DB.Create(&user).Error)

	key, err := util.GenerateToken(20)
	require.NoError(t, err)

	require.NoError(t, a.DB.Create(&model.AuthToken{Key: key, UserID: user.ID}).Error)

	return &user, key
}

func doJSON(t *testing.T, a *API, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}

	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)
	return w
}

func doUpload(t *testing.T, a *API, path, token, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fw, err := mw.CreateFormFile("image", filename)
	require.NoError(t, err)

	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}

	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
