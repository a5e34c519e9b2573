package middleware

import (
	"context"
	"net/http"
	"strings"

	"nelly_tech/internal/domain/entities"
	"nelly_tech/internal/usecase"
	"nelly_tech/pkg"
	"nelly_tech/pkg/logger"

	"github.com/gin-gonic/gin"
)

const ctxSession = "session"

var (
	errMissingToken = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Authorization header required", http.StatusUnauthorized)
	errInvalidToken = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Sessão expirada. Faça login novamente.", http.StatusUnauthorized)
)

// RequireAdmin rejects requests without a valid "Bearer <token>" header and
// stores the admin session for handlers.
func RequireAdmin(auth usecase.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := BearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}

		s, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}

		c.Set(ctxSession, s)
		ctx := context.WithValue(c.Request.Context(), logger.AdminEmailKey, s.Email)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// BearerToken extracts the token of an "Authorization: Bearer <token>" header.
func BearerToken(c *gin.Context) (string, bool) {
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

func GetSession(c *gin.Context) (entities.Session, bool) {
	v, ok := c.Get(ctxSession)
	if !ok {
		return entities.Session{}, false
	}
	s, ok := v.(entities.Session)
	return s, ok
}

func GetAdminEmail(c *gin.Context) string {
	s, _ := GetSession(c)
	return s.Email
}
