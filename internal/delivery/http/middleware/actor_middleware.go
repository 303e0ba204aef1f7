package middleware

import (
	"tickatch/internal/delivery/http/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ActorHeader carries the identity of the administrator performing the
// request. The API gateway authenticates the caller and forwards the id here.
const ActorHeader = "X-User-Id"

const actorContextKey = "actorID"

// ActorMiddleware extracts the acting administrator's id from the request.
type ActorMiddleware struct{}

// NewActorMiddleware is the constructor for ActorMiddleware.
func NewActorMiddleware() *ActorMiddleware {
	return &ActorMiddleware{}
}

// RequireActor rejects requests that do not carry a valid actor id header and
// stores the parsed id on the context for handlers to use.
func (m *ActorMiddleware) RequireActor(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw := c.Request().Header.Get(ActorHeader)
		if raw == "" {
			return response.Unauthorized(c, "MISSING_ACTOR", "X-User-Id header is required")
		}

		actorID, err := uuid.Parse(raw)
		if err != nil {
			return response.Unauthorized(c, "INVALID_ACTOR", "X-User-Id header must be a UUID")
		}

		c.Set(actorContextKey, actorID)

		return next(c)
	}
}

// ActorID returns the actor id stored by RequireActor.
func ActorID(c echo.Context) (uuid.UUID, bool) {
	actorID, ok := c.Get(actorContextKey).(uuid.UUID)

	return actorID, ok
}
