package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"mentorhub/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	memberRoles := []models.Role{models.RoleUser, models.RoleMember, models.RoleAdmin}
	mentorRoles := []models.Role{models.RoleMentor, models.RoleAdmin}
	adminRoles := []models.Role{models.RoleAdmin}

	principal := func(role models.Role) Session {
		return Session{User: &Principal{UserID: "u1", Role: role}}
	}

	tests := []struct {
		name    string
		session Session
		allowed []models.Role
		want    Decision
	}{
		{
			name:    "loading defers before anything else",
			session: Session{Loading: true},
			allowed: adminRoles,
			want:    DecisionLoading,
		},
		{
			name:    "loading defers even with no role requirement",
			session: Session{Loading: true},
			allowed: nil,
			want:    DecisionLoading,
		},
		{
			name:    "anonymous goes to sign in",
			session: Session{},
			allowed: memberRoles,
			want:    DecisionSignIn,
		},
		{
			name:    "anonymous goes to sign in on auth-only route",
			session: Session{},
			allowed: nil,
			want:    DecisionSignIn,
		},
		{
			name:    "empty allowed set admits any authenticated role",
			session: principal(models.RoleUser),
			allowed: nil,
			want:    DecisionAllow,
		},
		{
			name:    "plain user allowed on member routes",
			session: principal(models.RoleUser),
			allowed: memberRoles,
			want:    DecisionAllow,
		},
		{
			name:    "member allowed on member routes",
			session: principal(models.RoleMember),
			allowed: memberRoles,
			want:    DecisionAllow,
		},
		{
			name:    "mentor forbidden on member routes",
			session: principal(models.RoleMentor),
			allowed: memberRoles,
			want:    DecisionForbidden,
		},
		{
			name:    "mentor allowed on mentor routes",
			session: principal(models.RoleMentor),
			allowed: mentorRoles,
			want:    DecisionAllow,
		},
		{
			name:    "member forbidden on mentor routes",
			session: principal(models.RoleMember),
			allowed: mentorRoles,
			want:    DecisionForbidden,
		},
		{
			name:    "admin allowed everywhere",
			session: principal(models.RoleAdmin),
			allowed: mentorRoles,
			want:    DecisionAllow,
		},
		{
			name:    "admin allowed on admin routes",
			session: principal(models.RoleAdmin),
			allowed: adminRoles,
			want:    DecisionAllow,
		},
		{
			name:    "mentor forbidden on admin routes",
			session: principal(models.RoleMentor),
			allowed: adminRoles,
			want:    DecisionForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(tt.session, tt.allowed))
		})
	}
}

func guardRequest(t *testing.T, session Session, allowed ...models.Role) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(sessionKey, session)
	})
	r.GET("/guarded", RequireRoles(allowed...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	r.ServeHTTP(w, req)
	return w
}

func TestRequireRoles_StatusMapping(t *testing.T) {
	admin := Session{User: &Principal{UserID: "u1", Role: models.RoleAdmin}}
	member := Session{User: &Principal{UserID: "u2", Role: models.RoleMember}}

	assert.Equal(t, http.StatusServiceUnavailable,
		guardRequest(t, Session{Loading: true}, models.RoleAdmin).Code)
	assert.Equal(t, http.StatusUnauthorized,
		guardRequest(t, Session{}, models.RoleAdmin).Code)
	assert.Equal(t, http.StatusForbidden,
		guardRequest(t, member, models.RoleAdmin).Code)
	assert.Equal(t, http.StatusOK,
		guardRequest(t, admin, models.RoleAdmin).Code)
}

func TestRequireRoles_ForbiddenNamesRequiredRoles(t *testing.T) {
	member := Session{User: &Principal{UserID: "u2", Role: models.RoleMember}}
	w := guardRequest(t, member, models.RoleMentor, models.RoleAdmin)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "MENTOR, ADMIN")
}
