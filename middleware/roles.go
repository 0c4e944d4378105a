package middleware

import (
	"net/http"
	"strings"

	"mentorhub/models"

	"github.com/gin-gonic/gin"
)

// Decision is the guard's verdict for a request against a protected route.
type Decision int

const (
	// DecisionLoading defers the request: the auth backend has not
	// answered yet, so neither allow nor deny is safe.
	DecisionLoading Decision = iota
	// DecisionSignIn sends the anonymous caller to authentication.
	DecisionSignIn
	// DecisionForbidden rejects an authenticated caller whose role is
	// not in the route's allowed set.
	DecisionForbidden
	// DecisionAllow lets the request through.
	DecisionAllow
)

// Evaluate applies the route guard to a resolved session. The order is
// fixed: an unresolved session defers before anonymity is judged, and
// anonymity is judged before roles. An empty allowed set admits any
// authenticated caller.
func Evaluate(s Session, allowed []models.Role) Decision {
	if s.Loading {
		return DecisionLoading
	}
	if s.User == nil {
		return DecisionSignIn
	}
	if len(allowed) == 0 {
		return DecisionAllow
	}
	for _, r := range allowed {
		if s.User.Role == r {
			return DecisionAllow
		}
	}
	return DecisionForbidden
}

// RequireRoles guards a route group: 503 while identity is unresolved,
// 401 for anonymous callers, 403 (naming the required roles) for callers
// whose role is not allowed.
func RequireRoles(allowed ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch Evaluate(SessionFrom(c), allowed) {
		case DecisionLoading:
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
				"error": "Authentication service unavailable, retry shortly",
			})
		case DecisionSignIn:
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
			})
		case DecisionForbidden:
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":         "You do not have permission to access this resource",
				"requiredRoles": roleNames(allowed),
			})
		default:
			c.Next()
		}
	}
}

func roleNames(roles []models.Role) string {
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = string(r)
	}
	return strings.Join(names, ", ")
}
