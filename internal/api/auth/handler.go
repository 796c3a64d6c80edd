package auth

import (
	"context"
	"net/http"

	"sportsclub-app/internal/api/response"
	"sportsclub-app/internal/services"

	"github.com/gin-gonic/gin"
)

type Verifier interface {
	SendVerifyCode(ctx context.Context, email string) error
	SendVerifyCodeForResetPassword(ctx context.Context, email string) error
	VerifyAuthCode(ctx context.Context, email, code string) error
}

type Authenticator interface {
	Register(ctx context.Context, email, password string) error
	Login(ctx context.Context, email, password string) (*services.TokenPair, error)
	ResetPassword(ctx context.Context, email, password string) error
	Refresh(ctx context.Context, refreshToken string) (*services.TokenPair, error)
}

type Handler struct {
	verify Verifier
	auth   Authenticator
}

func NewHandler(v Verifier, a Authenticator) *Handler {
	return &Handler{verify: v, auth: a}
}

type emailInput struct {
	Email string `json:"email" binding:"required,email,max=255"`
}

type codeInput struct {
	Email string `json:"email" binding:"required,email,max=255"`
	Code  string `json:"code" binding:"required,max=12"`
}

type credentialsInput struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required"`
}

type refreshInput struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// POST /user/email/request/verify/code
func (h *Handler) RequestVerifyCode(c *gin.Context) {
	var input emailInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err)
		return
	}
	if err := h.verify.SendVerifyCode(c.Request.Context(), input.Email); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c)
}

// POST /user/email/verify/auth/code
func (h *Handler) VerifyAuthCode(c *gin.Context) {
	var input codeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err)
		return
	}
	if err := h.verify.VerifyAuthCode(c.Request.Context(), input.Email, input.Code); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c)
}

// POST /user/email/register
func (h *Handler) Register(c *gin.Context) {
	var input credentialsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err)
		return
	}
	if err := h.auth.Register(c.Request.Context(), input.Email, input.Password); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c)
}

// POST /user/email/login
func (h *Handler) Login(c *gin.Context) {
	var input credentialsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err)
		return
	}
	pair, err := h.auth.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, pair)
}

// POST /user/email/request/password/reset
func (h *Handler) RequestPasswordReset(c *gin.Context) {
	var input emailInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err)
		return
	}
	if err := h.verify.SendVerifyCodeForResetPassword(c.Request.Context(), input.Email); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c)
}

// POST /user/password/reset
func (h *Handler) ResetPassword(c *gin.Context) {
	var input credentialsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err)
		return
	}
	if err := h.auth.ResetPassword(c.Request.Context(), input.Email, input.Password); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c)
}

// POST /user/token/refresh
func (h *Handler) Refresh(c *gin.Context) {
	var input refreshInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err)
		return
	}
	pair, err := h.auth.Refresh(c.Request.Context(), input.RefreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, pair)
}
