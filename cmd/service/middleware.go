package service

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/roamlog/roam-api/internal/core"
	v1 "github.com/roamlog/roam-api/internal/logic/v1"
	"github.com/roamlog/roam-api/internal/response"
	"github.com/roamlog/roam-api/pkg/errors"
	"github.com/roamlog/roam-api/pkg/i18n"
	"github.com/roamlog/roam-api/pkg/security"
)

func I18n() gin.HandlerFunc {
	var allowList []string
	for k := range i18n.ALLOW_LANG {
		allowList = append(allowList, k)
	}
	l := i18n.NewLocalizer(allowList...)

	return response.ProvideResponseLocalizer(l)
}

const BEARER_SCHEME_PREFIX = "Bearer "

// Authorization rejects requests without a resolvable identity. The three
// failure modes stay distinguishable to the client: no token, malformed
// token, unknown token.
func Authorization(core *core.Core) gin.HandlerFunc {
	tracePrefix := "middleware.Authorization"
	return func(ctx *gin.Context) {
		claims, err := checkBearerToken(ctx, core)
		if err != nil {
			response.APIError(ctx, errors.Trace(tracePrefix, err))
			return
		}

		ctx.Set(v1.TOKEN_CONTEXT_KEY, claims)
	}
}

// OptionalAuthorization attaches an identity when a usable token is present
// and lets the request through either way.
func OptionalAuthorization(core *core.Core) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims, err := checkBearerToken(ctx, core)
		if err != nil {
			return
		}
		ctx.Set(v1.TOKEN_CONTEXT_KEY, claims)
	}
}

func checkBearerToken(ctx *gin.Context, core *core.Core) (security.TokenClaims, error) {
	header := ctx.GetHeader("Authorization")
	if header == "" || !strings.HasPrefix(header, BEARER_SCHEME_PREFIX) {
		return security.TokenClaims{}, errors.New("checkBearerToken.GetHeader.Authorization.nil", i18n.ERROR_UNAUTHORIZED, nil).Code(http.StatusUnauthorized)
	}

	claims, err := core.Srv().Credentials().Verify(strings.TrimPrefix(header, BEARER_SCHEME_PREFIX))
	if err != nil {
		if err == security.ErrMalformedToken {
			return security.TokenClaims{}, errors.New("checkBearerToken.Credentials.Verify.format", i18n.ERROR_INVALID_TOKEN_FMT, err).Code(http.StatusUnauthorized)
		}
		return security.TokenClaims{}, errors.New("checkBearerToken.Credentials.Verify", i18n.ERROR_INVALID_TOKEN, err).Code(http.StatusUnauthorized)
	}

	return claims, nil
}

func Cors(c *gin.Context) {
	method := c.Request.Method
	origin := c.Request.Header.Get("Origin")
	if origin != "" {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
		c.Header("Access-Control-Allow-Headers", "Origin, X-Requested-With, Content-Type, Accept, Authorization")
		c.Header("Access-Control-Expose-Headers", "Content-Length, Access-Control-Allow-Origin, Access-Control-Allow-Headers, Cache-Control, Content-Language, Content-Type")
		c.Header("Access-Control-Allow-Credentials", "true")
	}
	if method == "OPTIONS" {
		c.AbortWithStatus(http.StatusNoContent)
	}
	c.Next()
}

func Metrics(core *core.Core) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		core.Metrics().ObserveRequest(c.Request.Method, c.FullPath(), c.Writer.Status())
	}
}

func UseLimit(core *core.Core, operation string, genKeyFunc func(c *gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !core.UseLimiter(genKeyFunc(c), operation, 4).Allow() {
			response.APIError(c, errors.New("middleware.limiter", i18n.ERROR_TOO_MANY_REQUESTS, nil).Code(http.StatusTooManyRequests))
		}
	}
}
