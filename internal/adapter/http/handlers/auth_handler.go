package handlers

import (
	"errors"
	"net/http"

	request "nelly_tech/internal/adapter/http/dto/request"
	response "nelly_tech/internal/adapter/http/dto/response"
	"nelly_tech/internal/adapter/http/middleware"
	"nelly_tech/internal/usecase"
	"nelly_tech/internal/usecase/interfaces"
	"nelly_tech/pkg"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// Login godoc
// @Summary Admin sign-in
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body request.LoginRequest true "Credentials"
// @Success 200 {object} response.SessionResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 401 {object} pkg.HTTPError
// @Failure 429 {object} pkg.HTTPError
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	s, err := h.usecase.SignIn(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		respond(c, mapAuthError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}

// Logout godoc
// @Summary Admin sign-out
// @Tags auth
// @Security Bearer
// @Success 204
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	token, ok := middleware.BearerToken(c)
	if !ok {
		c.JSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
		return
	}
	if err := h.usecase.SignOut(c.Request.Context(), token); err != nil {
		respond(c, mapAuthError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// Me godoc
// @Summary Current admin session
// @Tags auth
// @Security Bearer
// @Produce json
// @Success 200 {object} response.MeResponse
// @Failure 401 {object} pkg.HTTPError
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	s, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSessionMe(s))
}

func mapAuthError(err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrInvalidSession) {
		return errUnauthorized
	}

	var authErr *interfaces.AuthError
	if !errors.As(err, &authErr) {
		return mapCommonError(err)
	}
	switch authErr.Code {
	case interfaces.AuthInvalidCredential:
		return pkg.NewDomainError("INVALID_CREDENTIAL", authErr.UserMessage(), err, http.StatusUnauthorized)
	case interfaces.AuthInvalidEmail:
		return pkg.NewDomainError("INVALID_EMAIL", authErr.UserMessage(), err, http.StatusBadRequest)
	case interfaces.AuthTooManyRequests:
		return pkg.NewDomainError("TOO_MANY_REQUESTS", authErr.UserMessage(), err, http.StatusTooManyRequests)
	default:
		return pkg.NewDomainError("AUTH_ERROR", authErr.UserMessage(), err, http.StatusInternalServerError)
	}
}
