package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/incial/Incial/errors"
	"github.com/incial/Incial/pkg/session"
)

// Auth issues session tokens. The surrounding platform owns real sign-in;
// this endpoint mints the bearer identity whose name stamps audit fields.
type Auth struct {
	sessions *session.Manager
	logger   *zap.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(sessions *session.Manager, logger *zap.Logger) *Auth {
	return &Auth{sessions: sessions, logger: logger}
}

// sessionRequest represents the request for a session token
type sessionRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=255"`
	Email string `json:"email" validate:"required,email"`
}

// sessionResponse carries the issued token
type sessionResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}

// CreateSession handles POST /auth/session
func (h *Auth) CreateSession(c echo.Context) error {
	var req sessionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	token, err := h.sessions.Issue(uuid.New(), req.Name, req.Email)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}

	return HandleSuccess(h.logger, c, http.StatusCreated, sessionResponse{
		Token:     token,
		ExpiresIn: int64(h.sessions.Expiry().Seconds()),
	})
}

// Me handles GET /auth/me
func (h *Auth) Me(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}
	return HandleSuccess(h.logger, c, http.StatusOK, user)
}
