package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	request "nelly_tech/internal/adapter/http/dto/request"
	response "nelly_tech/internal/adapter/http/dto/response"
	"nelly_tech/internal/adapter/http/middleware"
	"nelly_tech/internal/domain/entities"
	"nelly_tech/internal/domain/intake"
	"nelly_tech/internal/domain/query"
	"nelly_tech/internal/usecase"
	"nelly_tech/pkg"

	"github.com/gin-gonic/gin"
)

// MaxSubmitBodySize caps the public form payload.
const MaxSubmitBodySize = 64 << 10

var errPayloadTooLarge = pkg.NewDomainErrorSimple("PAYLOAD_TOO_LARGE", "Solicitação muito grande.", http.StatusRequestEntityTooLarge)

// QuoteRequestHandler serves the public form and the back office quote pages.
type QuoteRequestHandler struct {
	usecase usecase.IQuoteRequestUseCase
	loc     *time.Location
}

func NewQuoteRequestHandler(uc usecase.IQuoteRequestUseCase, loc *time.Location) *QuoteRequestHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &QuoteRequestHandler{usecase: uc, loc: loc}
}

// Submit godoc
// @Summary Submit a quote request from the public site form
// @Tags quote-requests
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Browser session id"
// @Param payload body request.SubmitQuoteRequest true "Form fields"
// @Success 201 {object} response.SubmitQuoteRequestResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 413 {object} pkg.HTTPError
// @Failure 429 {object} pkg.HTTPError
// @Failure 502 {object} pkg.HTTPError
// @Router /quote-requests [post]
func (h *QuoteRequestHandler) Submit(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxSubmitBodySize)

	var payload request.SubmitQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			c.JSON(errPayloadTooLarge.HTTPStatus, errPayloadTooLarge.ToHTTPError())
			return
		}
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.Submit(c.Request.Context(), middleware.SessionKey(c), payload.ToSubmission())
	if err != nil {
		var throttleErr *intake.ThrottleError
		if errors.As(err, &throttleErr) {
			c.Header("Retry-After", strconv.Itoa(throttleErr.RetryAfterSeconds))
		}
		respond(c, mapQuoteRequestError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromSubmitResult(result))
}

// List godoc
// @Summary List quote requests, newest first
// @Tags quote-requests
// @Security Bearer
// @Produce json
// @Param status query string false "Exact status"
// @Param search query string false "Matches name, service type or e-mail"
// @Success 200 {array} response.QuoteRequestResponse
// @Router /admin/quote-requests [get]
func (h *QuoteRequestHandler) List(c *gin.Context) {
	filter := query.QuoteFilter{
		Status: c.Query("status"),
		Search: c.Query("search"),
	}

	quotes, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		respond(c, mapQuoteRequestError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromQuoteRequests(quotes, h.loc))
}

// Get godoc
// @Summary Show a quote request and mark it as read
// @Tags quote-requests
// @Security Bearer
// @Produce json
// @Param id path string true "Quote request id"
// @Success 200 {object} response.QuoteRequestResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /admin/quote-requests/{id} [get]
func (h *QuoteRequestHandler) Get(c *gin.Context) {
	q, err := h.usecase.View(c.Request.Context(), c.Param("id"))
	if err != nil {
		respond(c, mapQuoteRequestError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromQuoteRequest(q, h.loc))
}

// UpdateStatus godoc
// @Summary Change the status of a quote request
// @Tags quote-requests
// @Security Bearer
// @Accept json
// @Produce json
// @Param id path string true "Quote request id"
// @Param payload body request.UpdateQuoteStatusRequest true "New status"
// @Success 200 {object} response.QuoteRequestResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /admin/quote-requests/{id}/status [patch]
func (h *QuoteRequestHandler) UpdateStatus(c *gin.Context) {
	var payload request.UpdateQuoteStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	q, err := h.usecase.UpdateStatus(
		c.Request.Context(),
		c.Param("id"),
		entities.QuoteStatus(payload.ResolveStatus()),
		payload.ExpectedVersion,
	)
	if err != nil {
		respond(c, mapQuoteRequestError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromQuoteRequest(q, h.loc))
}

// Delete godoc
// @Summary Delete a quote request
// @Tags quote-requests
// @Security Bearer
// @Param id path string true "Quote request id"
// @Success 204
// @Failure 404 {object} pkg.HTTPError
// @Router /admin/quote-requests/{id} [delete]
func (h *QuoteRequestHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respond(c, mapQuoteRequestError(err))
		return
	}

	c.Status(http.StatusNoContent)
}

func mapQuoteRequestError(err error) *pkg.AppError {
	var throttleErr *intake.ThrottleError
	if errors.As(err, &throttleErr) {
		return pkg.NewDomainError("SUBMISSION_THROTTLED", throttleErr.UserMessage(), err, http.StatusTooManyRequests)
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteRequestID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuoteStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Status inválido", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteRequestNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_REQUEST_NOT_FOUND", "Orçamento não encontrado", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStatusTransitionNotAllowed):
		return pkg.NewDomainError("STATUS_TRANSITION_NOT_ALLOWED", "Mudança de status não permitida", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrVersionConflict):
		return pkg.NewDomainError("VERSION_CONFLICT", "O registro foi alterado por outra sessão. Recarregue e tente novamente.", err, http.StatusConflict)
	default:
		return mapCommonError(err)
	}
}
