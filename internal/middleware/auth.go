package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/courtside/venue-service/internal/models"
	"github.com/courtside/venue-service/pkg/auth"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// TokenParser validates a bearer token and returns its claims.
type TokenParser interface {
	Parse(token string) (*auth.Claims, error)
}

// RevocationChecker reports whether a token id was revoked by logout.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// JWTAuth resolves the caller from the Authorization header. Requests without a
// valid token are rejected with 401. revoked may be nil.
func JWTAuth(parser TokenParser, revoked RevocationChecker, log *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
			}

			claims, err := parser.Parse(raw)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
			}

			ctx := c.Request().Context()
			if revoked != nil && claims.ID != "" {
				gone, err := revoked.IsRevoked(ctx, claims.ID)
				if err != nil {
					// A lookup failure must not let a possibly revoked token through.
					log.Error("token revocation lookup", zap.Error(err))
					return echo.NewHTTPError(http.StatusServiceUnavailable, "Authentication unavailable")
				}
				if gone {
					return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
				}
			}

			c.SetRequest(c.Request().WithContext(auth.WithIdentity(ctx, auth.IdentityFromClaims(claims))))
			return next(c)
		}
	}
}

// RequireRole lets the request through only when the resolved caller holds one of roles.
func RequireRole(roles ...models.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := auth.FromContext(c.Request().Context())
			if err := auth.Authorize(id); err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
			}
			if err := auth.Authorize(id, roles...); err != nil {
				return echo.NewHTTPError(http.StatusForbidden, "Forbidden")
			}
			return next(c)
		}
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
