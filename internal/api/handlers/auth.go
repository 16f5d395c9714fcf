package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stefanristic40/golden-eye-api/internal/api/httperr"
	"github.com/stefanristic40/golden-eye-api/internal/auth"
	"github.com/stefanristic40/golden-eye-api/internal/storage"
	"github.com/stefanristic40/golden-eye-api/pkg/dto"
)

type AuthHandler struct {
	users     UserStore
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewAuthHandler(users UserStore, jwtSecret string, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{users: users, jwtSecret: []byte(jwtSecret), tokenTTL: tokenTTL}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.New(httperr.InvalidInput, "username and password are required"))
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		httperr.Respond(c, httperr.Wrap(httperr.Internal, "hash password", err))
		return
	}

	if _, err := h.users.CreateUser(c.Request.Context(), req.Username, hash); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			httperr.Respond(c, httperr.New(httperr.Conflict, "user already exists"))
			return
		}
		httperr.Respond(c, httperr.Wrap(httperr.Internal, "create user", err))
		return
	}

	c.JSON(http.StatusCreated, dto.MessageResponse{Message: "user created successfully"})
}

// Signin verifies credentials and issues an access token. Nonexistent
// usernames and wrong passwords produce the same response, so callers
// cannot tell which field was wrong.
func (h *AuthHandler) Signin(c *gin.Context) {
	var req dto.SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.New(httperr.InvalidInput, "username and password are required"))
		return
	}

	user, err := h.users.GetUserByUsername(c.Request.Context(), req.Username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httperr.Respond(c, httperr.New(httperr.Unauthorized, "invalid username or password"))
			return
		}
		httperr.Respond(c, httperr.Wrap(httperr.Internal, "get user", err))
		return
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		httperr.Respond(c, httperr.New(httperr.Unauthorized, "invalid username or password"))
		return
	}

	token, err := auth.GenerateToken(user.ID.String(), h.jwtSecret, h.tokenTTL)
	if err != nil {
		httperr.Respond(c, httperr.Wrap(httperr.Internal, "generate token", err))
		return
	}

	c.JSON(http.StatusOK, dto.SigninResponse{
		Message:     "sign-in successful",
		AccessToken: token,
	})
}
