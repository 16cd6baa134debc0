package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"busbooking/internal/domain"

	"github.com/gin-gonic/gin"
)

func roleTestRouter(caller domain.RequestContext, allowed ...domain.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/guarded",
		func(c *gin.Context) {
			if caller.Authenticated() {
				c.Set(callerKey, caller)
			}
			c.Next()
		},
		RequireRoles(allowed...),
		func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) },
	)
	return r
}

func TestRequireRoles_AllowsListedRole(t *testing.T) {
	r := roleTestRouter(domain.RequestContext{UserID: 2, Role: domain.RoleOperator}, domain.RoleOperator)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/guarded", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestRequireRoles_RejectsOtherRole(t *testing.T) {
	r := roleTestRouter(domain.RequestContext{UserID: 3, Role: domain.RolePassenger}, domain.RoleOperator)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/guarded", nil))
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}

func TestRequireRoles_RejectsAnonymous(t *testing.T) {
	r := roleTestRouter(domain.RequestContext{}, domain.RoleOperator)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/guarded", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}
