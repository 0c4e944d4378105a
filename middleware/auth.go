package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	userRepo "mentorhub/database/repository/user"
	"mentorhub/models"
	"mentorhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt"
)

// sessionKey is the gin context key the auth session is stored under.
const sessionKey = "authSession"

// Principal is the authenticated caller.
type Principal struct {
	UserID string
	Role   models.Role
}

// Session is what the guard evaluates: Loading means the auth backend
// could not be reached and the caller's identity is still unknown; a nil
// User means the request is anonymous.
type Session struct {
	Loading bool
	User    *Principal
}

// SessionFrom returns the auth session resolved for this request. The
// zero session (anonymous, not loading) is returned when ResolveIdentity
// did not run.
func SessionFrom(c *gin.Context) Session {
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(Session); ok {
			return s
		}
	}
	return Session{}
}

// UserIDFrom returns the authenticated caller's user ID, or "" for
// anonymous requests.
func UserIDFrom(c *gin.Context) string {
	s := SessionFrom(c)
	if s.User == nil {
		return ""
	}
	return s.User.UserID
}

// ResolveIdentity resolves the bearer token into an auth session and
// stores it on the context. It never aborts: public routes see an
// anonymous session, and RequireRoles decides what each route demands.
//
// Token hashes are checked against the Redis auth cache first and fall
// back to the user document; when neither backend is reachable the
// session is marked Loading instead of silently anonymous.
func ResolveIdentity(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
			}
		}()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.Set(sessionKey, Session{})
			c.Next()
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.Set(sessionKey, Session{})
			c.Next()
			return
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.Set(sessionKey, Session{})
			c.Next()
			return
		}
		userID, _ := claims["sub"].(string)
		roleClaim, _ := claims["role"].(string)
		if userID == "" {
			c.Set(sessionKey, Session{})
			c.Next()
			return
		}

		computedHash := utils.HashToken(tokenString)
		ctx := context.Background()

		// Cache first: a hit both authenticates and refreshes the TTL.
		cacheReachable := false
		authCache := utils.GetAuthCacheClient()
		if authCache != nil {
			cachedHash, err := authCache.Get(ctx, utils.AuthCachePrefix+userID).Result()
			switch {
			case err == nil:
				cacheReachable = true
				if cachedHash == computedHash {
					_ = authCache.Expire(ctx, utils.AuthCachePrefix+userID, time.Hour).Err()
					c.Set(sessionKey, Session{User: &Principal{UserID: userID, Role: models.Role(roleClaim)}})
					c.Next()
					return
				}
				// Stale entry: the token was revoked or replaced.
				c.Set(sessionKey, Session{})
				c.Next()
				return
			case err == redis.Nil:
				cacheReachable = true
			default:
				log.Printf("WARNING: auth cache unavailable: %v. Falling back to DB lookup.", err)
			}
		}

		// Cache miss: the user document holds the authoritative hash.
		usr, err := users.GetByID(userID)
		if err != nil {
			if cacheReachable {
				c.Set(sessionKey, Session{})
			} else {
				// Neither backend answered; identity is unknown, not absent.
				c.Set(sessionKey, Session{Loading: true})
			}
			c.Next()
			return
		}
		if usr == nil || usr.TokenHash == "" || usr.TokenHash != computedHash {
			c.Set(sessionKey, Session{})
			c.Next()
			return
		}

		if authCache != nil {
			_ = authCache.Set(ctx, utils.AuthCachePrefix+userID, computedHash, time.Hour).Err()
		}

		c.Set(sessionKey, Session{User: &Principal{UserID: usr.ID, Role: usr.Role}})
		c.Next()
	}
}
