package auth

import (
	"fmt"
	"workshop-site/internal/logger"

	"github.com/casbin/casbin/v2"
)

// DefaultPolicies are the baseline rules. Operators inherit every anonymous rule.
var DefaultPolicies = [][]string{
	{RoleAnonymous, "/", "GET"},
	{RoleAnonymous, "/nav/:screen", "POST"},
	{RoleAnonymous, "/drawer/:action", "POST"},
	{RoleAnonymous, "/blog/:id", "GET"},
	{RoleAnonymous, "/events/:id", "GET"},
	{RoleAnonymous, "/contact", "POST"},
	{RoleAnonymous, "/login", "GET"},
	{RoleAnonymous, "/login", "POST"},
	{RoleAnonymous, "/logout", "POST"},
	{RoleAnonymous, "/auth/login", "GET"},
	{RoleAnonymous, "/auth/callback", "GET"},

	{RoleOperator, "/admin", "GET"},
	{RoleOperator, "/admin/*", "GET"},
	{RoleOperator, "/admin/*", "POST"},
}

// SeedDefaultPolicies adds any missing default policy. It is safe to run on every start.
func SeedDefaultPolicies(e casbin.IEnforcer, log logger.Logger) {
	log.Info("Seeding default authorization policies...")

	for _, p := range DefaultPolicies {
		if has, _ := e.HasPolicy(p); !has {
			if _, err := e.AddPolicy(p); err != nil {
				log.Error(err, fmt.Sprintf("Failed to add policy %v", p))
			}
		}
	}

	if has, _ := e.HasRoleForUser(RoleOperator, RoleAnonymous); !has {
		if _, err := e.AddRoleForUser(RoleOperator, RoleAnonymous); err != nil {
			log.Error(err, "Failed to add role 'operator' -> 'anonymous'")
		}
	}
	log.Info("Policy seeding complete.")
}
