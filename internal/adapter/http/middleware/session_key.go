package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// HeaderSessionID carries the browser session id generated by the site.
const HeaderSessionID = "X-Session-ID"

const maxSessionIDLength = 128

// SessionKey identifies the submitter for the anti-spam throttle: the site's
// session id when present, the client IP otherwise.
func SessionKey(c *gin.Context) string {
	if v := strings.TrimSpace(c.GetHeader(HeaderSessionID)); v != "" && len(v) <= maxSessionIDLength {
		return "sid:" + v
	}
	return "ip:" + c.ClientIP()
}
