package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/basingerf-felix/spilna-peremoga-website/internal/auth"
	crypto "github.com/basingerf-felix/spilna-peremoga-website/utils/crypto"
)

func setupLoginRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService, err := auth.NewJWTService("0123456789abcdef0123456789abcdef", time.Hour)
	require.NoError(t, err)

	hash, err := crypto.GenerateFromPassword("correct horse battery staple")
	require.NoError(t, err)

	loginService, err := auth.NewLoginService("admin", hash, jwtService)
	require.NoError(t, err)
	handler := NewLoginHandler(loginService)

	router := gin.New()
	router.POST("/api/auth/login", handler.LoginHandlerFunc)
	return router
}

func postLogin(router *gin.Engine, username, password string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(gin.H{"username": username, "password": password})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestLoginSuccess(t *testing.T) {
	router := setupLoginRouter(t)

	w := postLogin(router, "admin", "correct horse battery staple")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"access_token":"Bearer `)
	assert.Contains(t, w.Body.String(), "access_token_expiry")
}

func TestLoginWrongPassword(t *testing.T) {
	router := setupLoginRouter(t)

	w := postLogin(router, "admin", "wrong")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginWrongUsername(t *testing.T) {
	router := setupLoginRouter(t)

	w := postLogin(router, "root", "correct horse battery staple")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginMissingFields(t *testing.T) {
	router := setupLoginRouter(t)

	w := postLogin(router, "admin", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
