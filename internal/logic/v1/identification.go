package v1

import (
	"context"
	"log/slog"

	"github.com/roamlog/roam-api/pkg/security"
)

// TOKEN_CONTEXT_KEY carries the verified claims from the auth middleware to
// the logic layer. Kept as a string so gin contexts can hold it too.
const TOKEN_CONTEXT_KEY = "__token_claims"

func InjectTokenClaim(ctx context.Context) (security.TokenClaims, bool) {
	claims, ok := ctx.Value(TOKEN_CONTEXT_KEY).(security.TokenClaims)
	return claims, ok
}

func setupUserInfo(ctx context.Context) security.TokenClaims {
	claims, ok := InjectTokenClaim(ctx)
	if !ok {
		slog.Error("Not found user in context", slog.String("component", "logic.v1.setupUserInfo"))
	}
	return claims
}
