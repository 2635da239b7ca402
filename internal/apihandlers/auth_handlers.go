package apihandlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"placewise/internal/auth"
	"placewise/internal/models"
	"placewise/internal/store"
)

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// RegisterHandler serves POST /api/v1/auth/register.
func (h *APIHandler) RegisterHandler(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		BadRequest(c, "A valid email is required")
		return
	}
	if len(req.Password) < 6 {
		BadRequest(c, "Password must be at least 6 characters")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		Internal(c, "Failed to process registration")
		return
	}

	user := &models.User{
		Email:          req.Email,
		Name:           req.Name,
		HashedPassword: hash,
		IsActive:       true,
	}
	if err := h.App.UserStore.CreateUser(c.Request.Context(), user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			BadRequest(c, "Email already registered")
			return
		}
		log.Errorf("register: %v", err)
		Internal(c, "Failed to create user")
		return
	}

	h.issueToken(c, http.StatusCreated, user.Email)
}

// LoginHandler serves POST /api/v1/auth/login.
func (h *APIHandler) LoginHandler(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	user, err := h.App.UserStore.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			Unauthorized(c, "Incorrect email or password")
			return
		}
		log.Errorf("login: %v", err)
		Internal(c, "Failed to log in")
		return
	}
	if !user.IsActive || !auth.CheckPassword(user.HashedPassword, req.Password) {
		Unauthorized(c, "Incorrect email or password")
		return
	}

	h.issueToken(c, http.StatusOK, user.Email)
}

type resetRequestBody struct {
	Email string `json:"email"`
}

type resetPasswordBody struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

// RequestPasswordResetHandler serves POST /api/v1/auth/request-password-reset.
// The response never reveals whether the account exists. Token delivery is
// the mailer's job; here the token is only logged.
func (h *APIHandler) RequestPasswordResetHandler(c *gin.Context) {
	var req resetRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	const reply = "If that email exists, a reset link has been sent."

	user, err := h.App.UserStore.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Errorf("request password reset: %v", err)
		}
		c.JSON(http.StatusOK, gin.H{"message": reply})
		return
	}

	token, err := h.App.TokenIssuer.IssueReset(user.Email)
	if err != nil {
		log.Errorf("issue reset token: %v", err)
		c.JSON(http.StatusOK, gin.H{"message": reply})
		return
	}
	log.Infof("password reset token issued for %s: %s", user.Email, token)

	c.JSON(http.StatusOK, gin.H{"message": reply})
}

// ResetPasswordHandler serves POST /api/v1/auth/reset-password.
func (h *APIHandler) ResetPasswordHandler(c *gin.Context) {
	var req resetPasswordBody
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if len(req.NewPassword) < 6 {
		BadRequest(c, "Password must be at least 6 characters")
		return
	}

	email, err := h.App.TokenIssuer.VerifyReset(req.Token)
	if err != nil {
		BadRequest(c, "Invalid or expired token")
		return
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		Internal(c, "Failed to reset password")
		return
	}

	if err := h.App.UserStore.UpdateUserPassword(c.Request.Context(), email, hash); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			NotFound(c, "User not found")
			return
		}
		log.Errorf("reset password: %v", err)
		Internal(c, "Failed to reset password")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset successful!"})
}

func (h *APIHandler) issueToken(c *gin.Context, status int, email string) {
	token, err := h.App.TokenIssuer.Issue(email)
	if err != nil {
		log.Errorf("issue token: %v", err)
		Internal(c, "Failed to issue access token")
		return
	}
	c.JSON(status, tokenResponse{AccessToken: token, TokenType: "bearer"})
}
