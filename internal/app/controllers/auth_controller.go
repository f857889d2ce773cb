package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alumnisphere/backend/internal/app/models/dto"
	"github.com/alumnisphere/backend/internal/app/services"
	"github.com/alumnisphere/backend/internal/middleware"
)

// AuthController handles registration, login and identity lookups
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Register handles new account creation
// @Summary Register a new account
// @Description Creates a student or alumni account and returns a bearer token. Alumni accounts stay pending until an admin approves them.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Account information"
// @Success 201 {object} dto.AuthResponse "Account created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid registration data"))
		return
	}

	user, token, expiresIn, err := c.authService.Register(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	message := "Registration successful"
	if !user.IsApproved {
		message = "Registration successful, awaiting admin approval"
	}

	ctx.JSON(http.StatusCreated, dto.AuthResponse{
		Message:   message,
		Token:     token,
		ExpiresIn: expiresIn,
		User:      dto.NewUserSummary(user),
	})
}

// Login handles credential verification and token issuance
// @Summary Log in
// @Description Verifies email and password and returns a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.AuthResponse "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid login data"))
		return
	}

	user, token, expiresIn, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AuthResponse{
		Message:   "Login successful",
		Token:     token,
		ExpiresIn: expiresIn,
		User:      dto.NewUserSummary(user),
	})
}

// Me returns the authenticated caller's account
// @Summary Get current account
// @Description Returns the account behind the bearer token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserSummary "Current account"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	user, err := c.authService.Me(ctx.Request.Context(), middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewUserSummary(user))
}
