package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resident-records-service/internal/domain/services"
	"resident-records-service/internal/domain/services/container"
	"resident-records-service/internal/error/code"
	"resident-records-service/internal/error/response"
)

// InterfaceAuthController defines the account controller interface
type InterfaceAuthController interface {
	Register()
	Login()
	GetUsers()
}

// AuthController handles registration, login and account listing
type AuthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAuthController creates a new auth controller
func NewAuthController(ctx *gin.Context, container *container.ServiceContainer) *AuthController {
	return &AuthController{
		Ctx:       ctx,
		Container: container,
	}
}

// LoginRequest is the login form
type LoginRequest struct {
	Email    string `json:"email" example:"admin@x.com"`
	Password string `json:"password" example:"admin"`
	Role     string `json:"role" example:"admin"`
}

func (c *AuthController) authService() services.InterfaceAuthService {
	return c.Container.GetService("auth").(services.InterfaceAuthService)
}

// Register creates an account
// @Summary      Register an account
// @Description  Creates an admin or staff account. A duplicate email returns success=false with status 200.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body services.RegisterRequest true "Account details"
// @Success      200  {object}  services.RegisterResult
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /register [post]
func (c *AuthController) Register() {
	var req services.RegisterRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.AuthError(c.Ctx, response.BindFailure())
		return
	}

	result, err := c.authService().Register(c.Ctx.Request.Context(), req)
	if err != nil {
		response.AuthError(c.Ctx, err)
		return
	}

	c.Ctx.JSON(http.StatusOK, result)
}

// Login authenticates an account against its role
// @Summary      Log in
// @Description  Checks the credentials, then that the requested role matches the stored one
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Credentials"
// @Success      200  {object}  services.LoginResult
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /login [post]
func (c *AuthController) Login() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.AuthError(c.Ctx, response.BindFailure())
		return
	}

	result, err := c.authService().Login(c.Ctx.Request.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		response.AuthError(c.Ctx, err)
		return
	}

	c.Ctx.JSON(http.StatusOK, result)
}

// GetUsers lists every account
// @Summary      List accounts
// @Description  Lists every account without password hashes. Admin only.
// @Tags         Auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   models.Account
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /users [get]
func (c *AuthController) GetUsers() {
	accounts, err := c.authService().ListAccounts(c.Ctx.Request.Context())
	if err != nil {
		response.AuthError(c.Ctx, err)
		return
	}

	c.Ctx.JSON(http.StatusOK, accounts)
}

// HandleAuthFunc returns a gin.HandlerFunc for the given auth method
func HandleAuthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAuthController(ctx, container)

		switch method {
		case "register":
			controller.Register()
		case "login":
			controller.Login()
		case "getUsers":
			controller.GetUsers()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method")
		}
	}
}
