package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kisanmitra/kisan-service/internal/domain/dto"
	"github.com/kisanmitra/kisan-service/internal/service"
)

// AuthHandler provides HTTP handlers for authentication routes.
type AuthHandler struct {
	auth service.AuthService
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(auth service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login handles POST /api/auth/login requests.
//
// @Summary      Login
// @Description  Authenticates a user and returns a JWT access token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "Credentials"
// @Success      200 {object} dto.TokenResponse "Access token"
// @Failure      400 {object} dto.ErrorResponse "Invalid request"
// @Failure      401 {object} dto.ErrorResponse "Invalid credentials"
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Register handles POST /api/auth/register requests.
//
// @Summary      Register
// @Description  Creates a new user account
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body dto.RegisterRequest true "Account details"
// @Success      201 {object} dto.StatusResponse "Account created"
// @Failure      400 {object} dto.ErrorResponse "Invalid request"
// @Failure      409 {object} dto.ErrorResponse "Username or email already taken"
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.auth.Register(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	resp := dto.UserResponse{Username: user.Username, Email: user.Email, FullName: user.FullName}
	c.JSON(http.StatusCreated, dto.NewStatus("Account created", resp))
}

// Me handles GET /api/auth/me requests.
//
// @Summary      Current user
// @Description  Returns the authenticated user's profile from the access token
// @Tags         Auth
// @Produce      json
// @Success      200 {object} dto.UserResponse "Authenticated user"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid token"
// @Security     BearerAuth
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	username := c.GetString("user_name")
	email := c.GetString("user_email")
	if username == "" {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	c.JSON(http.StatusOK, dto.UserResponse{Username: username, Email: email})
}
