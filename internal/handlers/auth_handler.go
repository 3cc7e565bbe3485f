package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/mwangie/CareToCrown/internal/config"
	"github.com/mwangie/CareToCrown/internal/domain/directory"
	"github.com/mwangie/CareToCrown/internal/httperr"
	"github.com/mwangie/CareToCrown/internal/models"
	"github.com/mwangie/CareToCrown/internal/validators"
)

type AuthHandler struct {
	providers directory.Repository
	config    *config.Config
}

func NewAuthHandler(providers directory.Repository, cfg *config.Config) *AuthHandler {
	return &AuthHandler{providers: providers, config: cfg}
}

// --------- Requests ---------

type SignupRequest struct {
	Role     string `json:"role" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`

	Location  string `json:"location"`
	Cellphone string `json:"cellphone"`
	Email     string `json:"email"`
}

type LoginRequest struct {
	Role     string `json:"role" binding:"required"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if !models.ValidRole(req.Role) {
		httperr.BadRequest(c, "invalid_role", "Unknown provider role.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email != "" && !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not look valid.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Could not process password.")
		return
	}

	provider := models.Provider{
		Role:         req.Role,
		Name:         strings.TrimSpace(req.Name),
		Username:     strings.ToLower(strings.TrimSpace(req.Username)),
		PasswordHash: string(hashed),
		Location:     req.Location,
		Cellphone:    req.Cellphone,
		Email:        email,
	}

	if err := h.providers.Append(c.Request.Context(), &provider); err != nil {
		writeBusiness(c, err)
		return
	}

	token, err := h.generateToken(&provider)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not issue token.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"user":    providerView(&provider),
		"token":   token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	provider, err := h.providers.FindByUsername(
		c.Request.Context(),
		req.Role,
		strings.TrimSpace(req.Username),
	)
	if err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid username or password.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(provider.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid username or password.")
		return
	}

	token, err := h.generateToken(provider)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not issue token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    providerView(provider),
		"token":   token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(p *models.Provider) (string, error) {
	claims := jwt.MapClaims{
		"sub":  p.ID,
		"role": p.Role,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}

func providerView(p *models.Provider) gin.H {
	return gin.H{
		"id":        p.ID,
		"role":      p.Role,
		"name":      p.Name,
		"username":  p.Username,
		"location":  p.Location,
		"cellphone": p.Cellphone,
		"email":     p.Email,
	}
}
