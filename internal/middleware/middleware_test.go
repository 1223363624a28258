package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/taskboard-api/internal/billing"
	"github.com/yukikurage/taskboard-api/internal/constants"
	"github.com/yukikurage/taskboard-api/internal/identity"
)

type fixedChecker struct {
	mode  billing.Mode
	token string
}

func (f *fixedChecker) Check(_ context.Context, idToken string) billing.Status {
	f.token = idToken
	return billing.Status{Mode: f.mode}
}

func newRouter(verifier identity.Verifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(sessions.Sessions(constants.SessionCookieName, cookie.NewStore([]byte("test-secret"))))

	router.POST("/login", func(c *gin.Context) {
		session := sessions.Default(c)
		session.Set(constants.SessionKeyIDToken, c.Query("token"))
		_ = session.Save()
		c.Status(http.StatusNoContent)
	})

	router.GET("/me", RequireAuth(verifier), func(c *gin.Context) {
		accountID, _ := GetAccountID(c)
		c.JSON(http.StatusOK, gin.H{"accountId": accountID, "token": GetIDToken(c)})
	})
	return router
}

func TestRequireAuth_Bearer(t *testing.T) {
	router := newRouter(identity.StaticVerifier{"tok": "account-1"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer tok")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "account-1", body["accountId"])
	assert.Equal(t, "tok", body["token"])
}

func TestRequireAuth_Session(t *testing.T) {
	router := newRouter(identity.StaticVerifier{"tok": "account-1"})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login?token=tok", nil))
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "account-1")
}

func TestRequireAuth_Rejects(t *testing.T) {
	router := newRouter(identity.StaticVerifier{"tok": "account-1"})

	for _, header := range []string{"", "Bearer nope", "Basic tok"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, header)
		assert.JSONEq(t, `{"code":"UNAUTHORIZED","error":"Unauthorized"}`, w.Body.String())
	}
}

func TestRequireAuth_WithoutSessionMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/me", RequireAuth(identity.StaticVerifier{}), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireWritable(t *testing.T) {
	tests := []struct {
		mode     billing.Mode
		expected int
	}{
		{billing.ModeReadWrite, http.StatusOK},
		{billing.ModeReadOnly, http.StatusPaymentRequired},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			checker := &fixedChecker{mode: tt.mode}
			gin.SetMode(gin.TestMode)
			router := gin.New()
			router.POST("/tasks",
				RequireAuth(identity.StaticVerifier{"tok": "account-1"}),
				RequireWritable(checker),
				func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"success": true}) },
			)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/tasks", nil)
			req.Header.Set("Authorization", "Bearer tok")
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expected, w.Code)
			assert.Equal(t, "tok", checker.token)
			if tt.expected == http.StatusPaymentRequired {
				assert.Contains(t, w.Body.String(), "Insufficient credits. Purchase credits to continue.")
			}
		})
	}
}

func TestTimezone(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Timezone())
	router.GET("/tz", func(c *gin.Context) {
		c.String(http.StatusOK, GetLocation(c).String())
	})

	cases := map[string]string{
		"/tz?tz=Asia/Tokyo": "Asia/Tokyo",
		"/tz?tz=Not/AZone":  "Local",
	}
	for url, want := range cases {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))
		assert.Equal(t, want, w.Body.String(), url)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tz", nil)
	req.Header.Set(constants.TimezoneHeader, "America/New_York")
	router.ServeHTTP(w, req)
	assert.Equal(t, "America/New_York", w.Body.String())
}
