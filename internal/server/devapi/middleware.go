package devapi

import (
	"errors"
	"net/http"
	"slices"
	"time"

	"github.com/dmitrijs2005/marketadmin/internal/client/models"
	"github.com/dmitrijs2005/marketadmin/internal/common"
	"github.com/dmitrijs2005/marketadmin/internal/logging"
	"github.com/dmitrijs2005/marketadmin/internal/server/auth"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// subjectKey holds the token subject of an authenticated request.
const subjectKey = "subject"

// requestID makes sure every request carries an ID for tracing and logs.
// An ID sent by the client is kept.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(common.RequestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Request = c.Request.WithContext(logging.WithRequestID(c.Request.Context(), rid))
		c.Writer.Header().Set(common.RequestIDHeader, rid)
		c.Next()
	}
}

func requestLogger(l logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"ip", c.ClientIP(),
		}
		if sub := c.GetString(subjectKey); sub != "" {
			args = append(args, "subject", sub)
		}
		l.Info(c.Request.Context(), "request", args...)
	}
}

func corsFor(origins []string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	if slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	cfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions}
	cfg.AddAllowHeaders(common.AuthorizationHeader, common.RequestIDHeader, "Accept")
	cfg.AddExposeHeaders(common.RequestIDHeader, "Content-Disposition")
	cfg.MaxAge = 12 * time.Hour
	return cors.New(cfg)
}

// bearerAuth rejects requests without a valid admin token.
func bearerAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := common.BearerToken(c.GetHeader(common.AuthorizationHeader))
		if !ok {
			unauthorized(c, "missing token")
			return
		}

		claims, err := auth.ParseToken(token, secret)
		if err != nil {
			msg := common.ErrInvalidToken.Error()
			if errors.Is(err, common.ErrTokenExpired) {
				msg = common.ErrTokenExpired.Error()
			}
			unauthorized(c, msg)
			return
		}

		c.Set(subjectKey, claims.Subject)
		c.Next()
	}
}

func unauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, models.Failure[any](common.ErrorUnauthorized.Error(), msg))
}
