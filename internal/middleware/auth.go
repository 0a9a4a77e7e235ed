package middleware

import (
	"context"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/secretsanta/internal/auth"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// DrawIDKey is the context key for the draw named by a reveal token.
	DrawIDKey contextKey = "draw_id"
	// GiverIDKey is the context key for the giver named by a reveal token.
	GiverIDKey contextKey = "giver_id"
)

// GetDrawID extracts the draw ID from the context.
// Returns empty string if not found.
func GetDrawID(ctx context.Context) string {
	drawID, _ := ctx.Value(DrawIDKey).(string)
	return drawID
}

// GetGiverID extracts the giver ID from the context.
// Returns empty string if not found.
func GetGiverID(ctx context.Context) string {
	giverID, _ := ctx.Value(GiverIDKey).(string)
	return giverID
}

// RequireRevealToken returns an interceptor that validates the bearer reveal
// token and adds its draw and giver IDs to the request context.
func RequireRevealToken(tokens *auth.TokenManager) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			authHeader := req.Header().Get("Authorization")
			if authHeader == "" {
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidToken)
			}

			claims, err := tokens.Validate(parts[1])
			if err != nil {
				return nil, connect.NewError(connect.CodeUnauthenticated, err)
			}

			ctx = context.WithValue(ctx, DrawIDKey, claims.DrawID)
			ctx = context.WithValue(ctx, GiverIDKey, claims.GiverID)

			return next(ctx, req)
		}
	}
}
