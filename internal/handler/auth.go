package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kbukum/travelpay/internal/apperrors"
	"github.com/kbukum/travelpay/internal/auth"
	"github.com/kbukum/travelpay/internal/server"
	"github.com/kbukum/travelpay/internal/validation"
)

// registerRequest is the registration payload. Identifying attributes are
// optional individually but the account must be reachable by email or
// phone number.
type registerRequest struct {
	Username    string `json:"username" validate:"omitempty,min=3,max=50"`
	Email       string `json:"email" validate:"omitempty,email,max=255"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,phone"`
	CitizenID   string `json:"citizen_id" validate:"omitempty,citizen_id"`
	Password    string `json:"password" validate:"required,min=8,max=72"`
	FirstName   string `json:"first_name" validate:"required,max=50"`
	LastName    string `json:"last_name" validate:"required,max=50"`
}

// tokenResponse is the login success body.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Register creates a new account and returns its public view.
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c, apperrors.Validation("Invalid request body").WithCause(err))
		return
	}
	if err := validation.Validate(req); err != nil {
		server.RespondWithError(c, err)
		return
	}
	if req.Email == "" && req.PhoneNumber == "" {
		server.RespondWithError(c, apperrors.Validation(
			"at least one of email or phone_number is required"))
		return
	}

	user, err := h.auth.Register(c.Request.Context(), auth.Registration{
		Username:    req.Username,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		CitizenID:   req.CitizenID,
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
	})
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondCreated(c, user.Public())
}

// Login authenticates a form-encoded username/password pair. The username
// field carries any supported identifier; its shape decides how it is
// looked up.
func (h *Handler) Login(c *gin.Context) {
	identifier := c.PostForm("username")
	password := c.PostForm("password")

	v := validation.New().
		Required("username", identifier).
		Required("password", password)
	if appErr := v.Validate(); appErr != nil {
		server.RespondWithError(c, appErr)
		return
	}

	token, err := h.auth.Login(c.Request.Context(), identifier, password)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondOK(c, tokenResponse{AccessToken: token, TokenType: "bearer"})
}
