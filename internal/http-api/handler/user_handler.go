package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cursohub/internal/http-api/models"
	"cursohub/internal/http-api/repository"
	"cursohub/internal/http-api/service"
)

type UserHandler struct {
	userRepo      repository.UserRepository
	accessService service.AccessService
}

func NewUserHandler(userRepo repository.UserRepository, accessService service.AccessService) *UserHandler {
	return &UserHandler{userRepo: userRepo, accessService: accessService}
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/me", h.Me)
}

// Me returns the caller's own record; the SPA uses role/is_paid/status from
// here to drive the access gate client-side.
func (h *UserHandler) Me(c *gin.Context) {
	email, exists := c.Get("email")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	user, err := h.userRepo.FindByEmail(email.(string))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// Gate evaluates the access decision for a frontend path. Registered
// without AuthMiddleware so an anonymous caller gets redirect_to_login
// instead of a bare 401.
func (h *UserHandler) Gate(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Query("path")
		if path == "" {
			path = "/dashboard"
		}

		user := h.currentUser(c, authService)
		c.JSON(http.StatusOK, gin.H{
			"path":     path,
			"decision": h.accessService.Evaluate(user, path),
		})
	}
}

// currentUser resolves the bearer token to a user record, returning nil on
// any failure: missing header, bad token, or missing row all mean "no
// valid session" to the gate.
func (h *UserHandler) currentUser(c *gin.Context, authService service.AuthService) *models.User {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return nil
	}
	claims, err := authService.ValidateToken(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		return nil
	}
	user, err := h.userRepo.FindByEmail(claims.Email)
	if err != nil {
		return nil
	}
	return user
}
