package middleware

import (
	"net/http"
	"workshop-site/internal/auth"
	"workshop-site/internal/logger"
	"workshop-site/internal/session"

	"github.com/casbin/casbin/v2"
)

// Authorizer resolves the requester from the session and checks the request
// against the Casbin policies. Anonymous visitors asking for a forbidden page
// are sent to the login form.
func Authorizer(e casbin.IEnforcer, sm session.Manager, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userInfo := &UserInfo{Subject: auth.RoleAnonymous, Role: auth.RoleAnonymous}
			if email, name, ok := session.Operator(r.Context(), sm); ok {
				userInfo = &UserInfo{Subject: email, Name: name, Role: auth.RoleOperator}
			}
			r = r.WithContext(SetUserInfo(r.Context(), userInfo))

			allowed, err := e.Enforce(userInfo.Role, r.URL.Path, r.Method)
			if err != nil {
				log.Error(err, "Authorization check failed")
				http.Error(w, "Authorization error", http.StatusInternalServerError)
				return
			}

			if !allowed {
				if userInfo.Role == auth.RoleAnonymous && r.Method == http.MethodGet {
					http.Redirect(w, r, "/login", http.StatusFound)
					return
				}
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
