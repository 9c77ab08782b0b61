package api

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	authRepo "github.com/albertomonterom/vinkula-backend/internal/auth/repository"
	authUsecase "github.com/albertomonterom/vinkula-backend/internal/auth/usecase"
	destRepo "github.com/albertomonterom/vinkula-backend/internal/destination/repository"
	destUsecase "github.com/albertomonterom/vinkula-backend/internal/destination/usecase"
	"github.com/albertomonterom/vinkula-backend/pkg/config"
	"github.com/albertomonterom/vinkula-backend/pkg/record"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryObjectStore struct {
	objects map[string]string // key -> content type
}

func (m *memoryObjectStore) Put(_ context.Context, key string, _ []byte, contentType string) (string, error) {
	if m.objects == nil {
		m.objects = map[string]string{}
	}
	m.objects[key] = contentType
	return "https://vinkula-test.s3.us-east-2.amazonaws.com/" + key, nil
}

func newTestRouter(t *testing.T) (*gin.Engine, *record.MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := record.NewMemoryStore()
	store.DeclareTable("users", "idUser")
	store.DeclareTable("destinations", "idDestination")
	store.DeclareTable("categories", "idCategory")

	cfg := &config.Config{JWTSecret: "test-secret", JWTExpiry: 2 * time.Hour}
	authUc := authUsecase.NewAuthUsecase(authRepo.NewUserRepository(store, "users"), cfg)
	destUc := destUsecase.NewDestinationUsecase(
		destRepo.NewDestinationRepository(store, "destinations"),
		destRepo.NewCategoryRepository(store, "categories"),
		&memoryObjectStore{},
	)

	r := gin.New()
	SetupRoutes(r, authUc, destUc)
	return r, store
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func inlinePNG() string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("png-bytes"))
}

func loginAs(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": "A", "lastName": "B", "email": "a@b.com", "password": "pw1234",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "a@b.com", "password": "pw1234",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
		User  struct {
			Role string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "user", resp.User.Role)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestDestinationWriteFlow(t *testing.T) {
	r, _ := newTestRouter(t)
	token := loginAs(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/destinations", token, gin.H{
		"name":         "Playa Escondida",
		"description":  "Hidden beach",
		"address":      "Km 12",
		"latitude":     20.64,
		"longitude":    -105.22,
		"imagesBase64": []string{inlinePNG()},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var created struct {
		IDDestination string   `json:"idDestination"`
		ImageURLs     []string `json:"imageUrls"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.IDDestination)
	require.Len(t, created.ImageURLs, 1)

	w = doJSON(t, r, http.MethodPut, "/api/destinations/"+created.IDDestination, token, gin.H{
		"description": "Even more hidden",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var edited struct {
		UpdatedFields []string `json:"updatedFields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &edited))
	assert.Equal(t, []string{"description"}, edited.UpdatedFields)

	// empty update set is rejected
	w = doJSON(t, r, http.MethodPut, "/api/destinations/"+created.IDDestination, token, gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// the listing reflects the edit
	w = doJSON(t, r, http.MethodGet, "/api/destinations", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listed []struct {
		Description string   `json:"description"`
		ImageURLs   []string `json:"imageUrls"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "Even more hidden", listed[0].Description)
	assert.Equal(t, created.ImageURLs, listed[0].ImageURLs)
}

func TestDestinationWriteRequiresCredential(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/destinations", "", gin.H{"name": "n"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/destinations/DEST_1", "bogus-token", gin.H{"description": "d"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDestinationWriteRejectsDisallowedRole(t *testing.T) {
	r, store := newTestRouter(t)
	loginAs(t, r)

	// seed an account whose role sits outside the write policy
	hash, err := authRepo.HashPassword("pw1234")
	require.NoError(t, err)
	require.NoError(t, store.PutRecord(context.Background(), "users", record.Item{
		"idUser":   record.StringValue("USR_admin"),
		"email":    record.StringValue("admin@b.com"),
		"role":     record.StringValue("admin"),
		"password": record.StringValue(hash),
	}))

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "admin@b.com", "password": "pw1234",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	w = doJSON(t, r, http.MethodPost, "/api/destinations", resp.Token, gin.H{
		"name":         "n",
		"description":  "d",
		"address":      "a",
		"latitude":     1.0,
		"longitude":    2.0,
		"imagesBase64": []string{inlinePNG()},
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestListCategories(t *testing.T) {
	r, store := newTestRouter(t)

	require.NoError(t, store.PutRecord(context.Background(), "categories", record.Item{
		"idCategory": record.StringValue("CAT_1"),
		"name":       record.StringValue("Beach"),
	}))

	w := doJSON(t, r, http.MethodGet, "/api/categories", "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var listed []struct {
		IDCategory string `json:"idCategory"`
		Name       string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "CAT_1", listed[0].IDCategory)
	assert.Equal(t, "Beach", listed[0].Name)
}

func TestEditMe(t *testing.T) {
	r, _ := newTestRouter(t)
	token := loginAs(t, r)

	w := doJSON(t, r, http.MethodPut, "/api/auth/me", token, gin.H{
		"name":               "Renamed",
		"favoriteCategories": []string{"beach"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		UpdatedFields []string          `json:"updatedFields"`
		NewValues     map[string]string `json:"newValues"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.ElementsMatch(t, []string{"name", "favoriteCategories"}, resp.UpdatedFields)
	assert.Equal(t, "Renamed", resp.NewValues["name"])

	w = doJSON(t, r, http.MethodPut, "/api/auth/me", "", gin.H{"name": "x"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
