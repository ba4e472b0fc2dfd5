package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/crm-api/internal/dto"
	"github.com/BruksfildServices01/crm-api/internal/httperr"
	"github.com/BruksfildServices01/crm-api/internal/httpresp"
	"github.com/BruksfildServices01/crm-api/internal/middleware"
	ucAuth "github.com/BruksfildServices01/crm-api/internal/usecase/auth"
	"github.com/BruksfildServices01/crm-api/internal/validators"
)

type AuthHandler struct {
	register *ucAuth.Register
	login    *ucAuth.Login
	logout   *ucAuth.Logout
	forgot   *ucAuth.ForgotPassword
	reset    *ucAuth.ResetPassword
}

func NewAuthHandler(
	register *ucAuth.Register,
	login *ucAuth.Login,
	logout *ucAuth.Logout,
	forgot *ucAuth.ForgotPassword,
	reset *ucAuth.ResetPassword,
) *AuthHandler {
	return &AuthHandler{
		register: register,
		login:    login,
		logout:   logout,
		forgot:   forgot,
		reset:    reset,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name                 string `json:"name" binding:"required,max=255"`
	Email                string `json:"email" binding:"required,email,max=255"`
	Password             string `json:"password" binding:"required,min=8"`
	PasswordConfirmation string `json:"password_confirmation" binding:"required,eqfield=Password"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Email                string `json:"email" binding:"required,email"`
	Password             string `json:"password" binding:"required,min=8"`
	PasswordConfirmation string `json:"password_confirmation" binding:"required,eqfield=Password"`
}

// --------- Responses ---------

type AuthResponse struct {
	Message string       `json:"message"`
	User    *dto.UserDTO `json:"user"`
	Token   string       `json:"token"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, validators.BindError(err))
		return
	}

	res, err := h.register.Execute(c.Request.Context(), ucAuth.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{
		Message: "User registered successfully",
		User:    dto.NewUserDTO(res.User),
		Token:   res.Token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, validators.BindError(err))
		return
	}

	res, err := h.login.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		Message: "Login successful",
		User:    dto.NewUserDTO(res.User),
		Token:   res.Token,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.logout.Execute(c.Request.Context(), middleware.Claims(c)); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Message(c, "Logout successful")
}

func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": dto.NewUserDTO(middleware.Principal(c))})
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, validators.BindError(err))
		return
	}

	msg, err := h.forgot.Execute(c.Request.Context(), req.Email)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Message(c, msg)
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, validators.BindError(err))
		return
	}

	err := h.reset.Execute(c.Request.Context(), ucAuth.ResetPasswordInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Message(c, "Password reset successfully")
}
