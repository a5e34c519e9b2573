package handlers

import (
	"errors"
	"net/http"
	"strings"

	"nelly_tech/internal/domain/intake"
	"nelly_tech/internal/usecase/interfaces"
	"nelly_tech/pkg"
	"nelly_tech/pkg/logger"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errUnauthorized   = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Sessão expirada. Faça login novamente.", http.StatusUnauthorized)
)

// mapCommonError covers the errors every handler can get back: form
// validation, store failures and anything unexpected.
func mapCommonError(err error) *pkg.AppError {
	var validationErr *intake.ValidationError
	if errors.As(err, &validationErr) {
		code := "INVALID_" + strings.ToUpper(string(validationErr.Field))
		return pkg.NewDomainError(code, validationErr.Message, err, http.StatusBadRequest)
	}

	var storeErr *interfaces.StoreError
	if errors.As(err, &storeErr) {
		code := "STORE_" + strings.ToUpper(strings.ReplaceAll(string(storeErr.Code), "-", "_"))
		return pkg.NewDomainError(code, storeErr.Message, err, http.StatusBadGateway)
	}

	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}

// respond writes appErr and logs it when it is a server side failure.
func respond(c *gin.Context, appErr *pkg.AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logger.Error(c.Request.Context(), "request failed",
			"code", appErr.Code,
			"path", c.FullPath(),
			"error", appErr.Err,
		)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
