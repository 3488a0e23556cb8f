// Package response owns the HTTP boundary: success/error serialization,
// request logging and per-request error-message localization. Store and logic
// internals are logged here and never leak to the client.
package response

import (
	stderrors "errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/roamlog/roam-api/pkg/errors"
	"github.com/roamlog/roam-api/pkg/i18n"
	"github.com/roamlog/roam-api/pkg/utils"
)

const (
	LOCALIZER_CONTEXT_KEY = "response.localizer"
	LANG_CONTEXT_KEY      = "response.lang"
)

// ProvideResponseLocalizer picks the response language from Accept-Language
// and stores the localizer for APIError.
func ProvideResponseLocalizer(l *i18n.Localizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := i18n.DEFAULT_LANG
		for _, candidate := range utils.ParseAcceptLanguage(c.GetHeader("Accept-Language")) {
			if i18n.ALLOW_LANG[candidate] {
				lang = candidate
				break
			}
		}
		c.Set(LOCALIZER_CONTEXT_KEY, l)
		c.Set(LANG_CONTEXT_KEY, lang)
		c.Next()
	}
}

// NewResponse logs every request after it finishes.
func NewResponse() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
		}
		if status >= http.StatusInternalServerError {
			slog.Error("request failed", attrs...)
			return
		}
		slog.Info("request", attrs...)
	}
}

func localize(c *gin.Context, key string) string {
	l, ok := c.Get(LOCALIZER_CONTEXT_KEY)
	if !ok {
		return key
	}
	localizer, ok := l.(*i18n.Localizer)
	if !ok {
		return key
	}
	return localizer.Get(c.GetString(LANG_CONTEXT_KEY), key)
}

func APISuccess(c *gin.Context, data any) {
	if data == nil {
		c.Status(http.StatusOK)
		return
	}
	c.JSON(http.StatusOK, data)
}

func APICreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func APINoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func APIError(c *gin.Context, err error) {
	var e *errors.Error
	if !stderrors.As(err, &e) {
		e = errors.New("response.APIError", i18n.ERROR_INTERNAL, err)
	}

	if e.StatusCode() >= http.StatusInternalServerError {
		slog.Error("request error",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("error", e.Error()),
		)
	}

	c.AbortWithStatusJSON(e.StatusCode(), gin.H{"error": localize(c, e.Key())})
}
