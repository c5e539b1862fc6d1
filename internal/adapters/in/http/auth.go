package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/generated/servers"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const actorKey = "actor"

var errMissingBearer = errors.New("missing bearer token")

// Claims is the access token payload. Subject carries the user id.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Authenticator verifies HS256 access tokens issued by the identity service.
type Authenticator struct {
	secret []byte
}

func NewAuthenticator(secret string) *Authenticator {
	return &Authenticator{secret: []byte(secret)}
}

// IssueToken signs a token for actor. Used by tooling and tests; production
// tokens come from the identity service sharing the secret.
func (a *Authenticator) IssueToken(actor kernel.Actor, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: string(actor.Role()),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.ID().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

// Parse validates the token and turns its claims into an actor.
func (a *Authenticator) Parse(token string) (kernel.Actor, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return kernel.Actor{}, err
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return kernel.Actor{}, jwt.ErrTokenInvalidClaims
	}

	id, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return kernel.Actor{}, err
	}
	role, err := kernel.ParseRole(claims.Role)
	if err != nil {
		return kernel.Actor{}, err
	}
	return kernel.NewActor(id, role)
}

// Middleware rejects requests without a valid bearer token and stores the
// actor on the echo context. Requests matched by skipper pass through.
func (a *Authenticator) Middleware(skipper middleware.Skipper) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if skipper != nil && skipper(ctx) {
				return next(ctx)
			}

			token, err := bearer(ctx.Request().Header.Get(echo.HeaderAuthorization))
			if err == nil {
				var actor kernel.Actor
				if actor, err = a.Parse(token); err == nil {
					ctx.Set(actorKey, actor)
					return next(ctx)
				}
			}
			return ctx.JSON(http.StatusUnauthorized, servers.Error{
				Code:    http.StatusUnauthorized,
				Message: "Invalid or missing access token",
			})
		}
	}
}

// PublicPaths skips authentication for health, metrics and documentation.
func PublicPaths(ctx echo.Context) bool {
	path := ctx.Request().URL.Path
	return path == "/health" ||
		path == "/metrics" ||
		path == "/openapi.json" ||
		strings.HasPrefix(path, "/swagger/")
}

func bearer(header string) (string, error) {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", errMissingBearer
	}
	return strings.TrimSpace(token), nil
}

// actorFrom returns the authenticated caller, requiring one of roles when given.
func actorFrom(ctx echo.Context, roles ...kernel.Role) (kernel.Actor, error) {
	actor, ok := ctx.Get(actorKey).(kernel.Actor)
	if !ok {
		return kernel.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "Invalid or missing access token")
	}
	if len(roles) == 0 {
		return actor, nil
	}
	for _, role := range roles {
		if actor.Is(role) {
			return actor, nil
		}
	}
	return kernel.Actor{}, echo.NewHTTPError(http.StatusForbidden, "This operation is not available for role "+string(actor.Role()))
}
