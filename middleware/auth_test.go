package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"edushare/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func init() {
	os.Setenv("GO_ENV", "test")
	utils.InitJWT()
	gin.SetMode(gin.TestMode)
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(utils.JWTSecretKey))
	if err != nil {
		t.Fatalf("Failed to sign token: %v", err)
	}
	return signed
}

func authRequest(token string) *httptest.ResponseRecorder {
	router := gin.New()
	router.GET("/protected", AuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id")})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestAuthMiddleware(t *testing.T) {
	exp := time.Now().Add(time.Hour).Unix()

	t.Run("ValidToken", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{"user_id": "user-1", "exp": exp})
		recorder := authRequest(token)
		if recorder.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", recorder.Code)
		}
	})

	t.Run("MissingToken", func(t *testing.T) {
		recorder := authRequest("")
		if recorder.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", recorder.Code)
		}
	})

	t.Run("NonStringUserIDClaim", func(t *testing.T) {
		// A correctly signed token with a malformed claim must be
		// rejected, not crash the request.
		token := signToken(t, jwt.MapClaims{"user_id": 12345, "exp": exp})
		recorder := authRequest(token)
		if recorder.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", recorder.Code)
		}
	})

	t.Run("EmptyUserIDClaim", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{"user_id": "", "exp": exp})
		recorder := authRequest(token)
		if recorder.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", recorder.Code)
		}
	})

	t.Run("RefreshTokenRejected", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{"user_id": "user-1", "exp": exp, "type": "refresh"})
		recorder := authRequest(token)
		if recorder.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", recorder.Code)
		}
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{
			"user_id": "user-1",
			"exp":     time.Now().Add(-time.Hour).Unix(),
		})
		recorder := authRequest(token)
		if recorder.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", recorder.Code)
		}
	})
}
