package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/studio316/booking-api/internal/config"
	"github.com/studio316/booking-api/internal/httperr"
	"github.com/studio316/booking-api/internal/middleware"
	"github.com/studio316/booking-api/internal/models"
	"github.com/studio316/booking-api/internal/session"
	"github.com/studio316/booking-api/internal/store"
)

type AuthHandler struct {
	store     *store.Store
	config    *config.Config
	snapshots *session.Snapshots
}

func NewAuthHandler(st *store.Store, cfg *config.Config, snapshots *session.Snapshots) *AuthHandler {
	return &AuthHandler{store: st, config: cfg, snapshots: snapshots}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Could not process the password.")
		return
	}

	user := models.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:        req.Phone,
		PasswordHash: string(hashed),
		CreatedAt:    time.Now(),
	}

	if err := h.store.CreateUser(c.Request.Context(), &user); err != nil {
		httperr.Business(c, err)
		return
	}

	token, jti, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not create a session.")
		return
	}

	if err := h.snapshots.Save(c.Request.Context(), jti, &user); err != nil {
		httperr.Internal(c, "failed_to_save_session", "Could not create a session.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":  user,
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	// The identity is resolved by email alone; the submitted password is
	// required but not checked against anything.
	user, err := h.store.FindUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
		return
	}

	token, jti, err := h.generateToken(user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not create a session.")
		return
	}

	if err := h.snapshots.Save(c.Request.Context(), jti, user); err != nil {
		httperr.Internal(c, "failed_to_save_session", "Could not create a session.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  user,
		"token": token,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	tokenID := c.GetString(middleware.ContextTokenID)
	if tokenID != "" {
		_ = h.snapshots.Remove(c.Request.Context(), tokenID)
	}

	c.Status(http.StatusNoContent)
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, string, error) {
	jti := uuid.NewString()

	claims := jwt.MapClaims{
		"sub": user.ID,
		"adm": user.IsAdmin,
		"jti": jti,
		"exp": time.Now().Add(h.config.SessionTTL).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.config.JWTSecret))
	return signed, jti, err
}
