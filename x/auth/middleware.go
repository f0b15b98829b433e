package auth

import (
	"strings"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/attribute"

	"github.com/totegamma/campsite/core"
	"github.com/totegamma/campsite/util"
)

type Principal int

const (
	ISADMIN = iota
	ISKNOWN
)

// extractToken reads the session from the cookie first, then the bearer header
func extractToken(c echo.Context) string {
	if cookie, err := c.Cookie(core.SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	split := strings.Fields(c.Request().Header.Get("authorization"))
	if len(split) == 2 && strings.EqualFold(split[0], "Bearer") {
		return split[1]
	}

	return ""
}

// IdentifyIdentity resolves the requester from the session token.
// requests without a valid session continue as Unknown.
func (s *service) IdentifyIdentity(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, span := tracer.Start(c.Request().Context(), "Auth.Service.IdentifyIdentity")
		defer span.End()

		requester := core.RequesterContext{Type: core.Unknown}

		token := extractToken(c)
		if token != "" {
			claims, err := s.session.Verify(ctx, token)
			if err != nil {
				span.RecordError(err)
			} else {
				requester.ID = claims.Subject
				requester.Role = claims.Role
				requester.Type = core.Member
				if s.isAdmin(claims) {
					requester.Type = core.Admin
				}
				c.Set(core.RequesterClaimsCtxKey, claims)
			}
		}

		c.Set(core.RequesterContextCtxKey, requester)
		c.Set(core.RequesterTypeCtxKey, requester.Type)
		span.SetAttributes(attribute.String("RequesterType", core.RequesterTypeString(requester.Type)))
		if requester.ID != "" {
			span.SetAttributes(attribute.String("RequesterId", requester.ID))
		}

		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}

func Restrict(principal Principal) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, span := tracer.Start(c.Request().Context(), "Auth.Restrict")
			defer span.End()

			requester := util.Requester(c)

			switch principal {
			case ISADMIN:
				if !requester.IsAdmin() {
					return util.HandleError(c, "auth", core.NewErrorPermissionDenied())
				}
			case ISKNOWN:
				if !requester.IsKnown() {
					return util.HandleError(c, "auth", core.NewErrorUnauthorized())
				}
			}

			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}
