package handler

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cursohub/internal/http-api/service"
)

const oauthStateCookie = "oauth_state"

type OAuthHandler struct {
	oauthService service.GoogleOAuthService
	frontendURL  string
}

func NewOAuthHandler(oauthService service.GoogleOAuthService, frontendURL string) *OAuthHandler {
	return &OAuthHandler{oauthService: oauthService, frontendURL: frontendURL}
}

func (h *OAuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/google", h.GoogleLogin)
	rg.GET("/google/callback", h.GoogleCallback)
}

// GoogleLogin starts the consent flow. The CSRF state round-trips through a
// short-lived cookie.
func (h *OAuthHandler) GoogleLogin(c *gin.Context) {
	if !h.oauthService.Enabled() {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "google login is not configured"})
		return
	}

	state, err := randomState()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start login"})
		return
	}

	c.SetCookie(oauthStateCookie, state, int((10 * time.Minute).Seconds()), "/", "", false, true)
	c.Redirect(http.StatusTemporaryRedirect, h.oauthService.AuthCodeURL(state))
}

// GoogleCallback finishes the flow and bounces the browser back to the SPA
// with a first-party token in the query string.
func (h *OAuthHandler) GoogleCallback(c *gin.Context) {
	if !h.oauthService.Enabled() {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "google login is not configured"})
		return
	}

	cookieState, err := c.Cookie(oauthStateCookie)
	if err != nil || cookieState == "" || c.Query("state") != cookieState {
		c.Redirect(http.StatusTemporaryRedirect, h.frontendURL+"/login?error=oauth_state")
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		c.Redirect(http.StatusTemporaryRedirect, h.frontendURL+"/login?error=oauth_denied")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	token, err := h.oauthService.HandleCallback(ctx, code)
	if err != nil {
		c.Redirect(http.StatusTemporaryRedirect, h.frontendURL+"/login?error=oauth_failed")
		return
	}

	c.Redirect(http.StatusTemporaryRedirect, h.frontendURL+"/social-login?token="+token)
}

func randomState() (string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
