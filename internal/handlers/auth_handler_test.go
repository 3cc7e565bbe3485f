package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwangie/CareToCrown/internal/config"
	"github.com/mwangie/CareToCrown/internal/httperr"
	"github.com/mwangie/CareToCrown/internal/models"
)

type memoryDirectory struct {
	providers []models.Provider
}

func (m *memoryDirectory) ListByRole(_ context.Context, role string) ([]models.Provider, error) {
	var out []models.Provider
	for _, p := range m.providers {
		if p.Role == role {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memoryDirectory) FindByID(_ context.Context, role string, id uint) (*models.Provider, error) {
	for i := range m.providers {
		if m.providers[i].Role == role && m.providers[i].ID == id {
			return &m.providers[i], nil
		}
	}
	return nil, errors.New("not found")
}

func (m *memoryDirectory) FindByName(_ context.Context, role, name string) (*models.Provider, error) {
	for i := range m.providers {
		if m.providers[i].Role == role && m.providers[i].Name == name {
			return &m.providers[i], nil
		}
	}
	return nil, errors.New("not found")
}

func (m *memoryDirectory) FindByUsername(_ context.Context, role, username string) (*models.Provider, error) {
	for i := range m.providers {
		if m.providers[i].Role == role && m.providers[i].Username == strings.ToLower(username) {
			return &m.providers[i], nil
		}
	}
	return nil, errors.New("not found")
}

func (m *memoryDirectory) Append(_ context.Context, p *models.Provider) error {
	for _, existing := range m.providers {
		if existing.Role == p.Role && existing.Username == strings.ToLower(p.Username) {
			return httperr.ErrBusiness("username_taken")
		}
	}
	p.ID = uint(len(m.providers) + 1)
	m.providers = append(m.providers, *p)
	return nil
}

func newAuthRouter(dir *memoryDirectory) *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{JWTSecret: "test-secret"}
	h := NewAuthHandler(dir, cfg)

	r := gin.New()
	r.POST("/signup", h.Signup)
	r.POST("/login", h.Login)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSignup_DuplicateUsernameCaseInsensitive(t *testing.T) {
	dir := &memoryDirectory{}
	r := newAuthRouter(dir)

	w := doJSON(t, r, "/signup", gin.H{
		"role": "patient", "name": "Alice M", "username": "Alice", "password": "secret1",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, "/signup", gin.H{
		"role": "patient", "name": "Other Alice", "username": "ALICE", "password": "secret2",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "username_taken")
}

func TestSignup_SameUsernameDifferentRole(t *testing.T) {
	dir := &memoryDirectory{}
	r := newAuthRouter(dir)

	w := doJSON(t, r, "/signup", gin.H{
		"role": "patient", "name": "Alice M", "username": "alice", "password": "secret1",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, "/signup", gin.H{
		"role": "doctor", "name": "Dr Alice", "username": "alice", "password": "secret2",
	})
	assert.Equal(t, http.StatusCreated, w.Code, "role lists are independent")
}

func TestSignup_RejectsUnknownRole(t *testing.T) {
	r := newAuthRouter(&memoryDirectory{})

	w := doJSON(t, r, "/signup", gin.H{
		"role": "admin", "name": "X", "username": "x", "password": "secret1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_role")
}

func TestLogin_CaseInsensitiveUsername(t *testing.T) {
	dir := &memoryDirectory{}
	r := newAuthRouter(dir)

	w := doJSON(t, r, "/signup", gin.H{
		"role": "patient", "name": "Alice M", "username": "Alice", "password": "secret1",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, "/login", gin.H{
		"role": "patient", "username": "aLiCe", "password": "secret1",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Token)
}

func TestLogin_WrongPassword(t *testing.T) {
	dir := &memoryDirectory{}
	r := newAuthRouter(dir)

	w := doJSON(t, r, "/signup", gin.H{
		"role": "patient", "name": "Alice M", "username": "alice", "password": "secret1",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, "/login", gin.H{
		"role": "patient", "username": "alice", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_credentials")
}

func TestLogin_UnknownUser(t *testing.T) {
	r := newAuthRouter(&memoryDirectory{})

	w := doJSON(t, r, "/login", gin.H{
		"role": "patient", "username": "ghost", "password": "whatever",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
