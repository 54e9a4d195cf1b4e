package auth

import (
	"fmt"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/casbin/casbin/v2/util"
	sqlxadapter "github.com/memwey/casbin-sqlx-adapter"
)

// Roles known to the authorization model.
const (
	RoleAnonymous = "anonymous"
	RoleOperator  = "operator"
)

// modelText is an RBAC model whose objects are request paths matched with keyMatch2.
const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && keyMatch2(r.obj, p.obj) && r.act == p.act
`

// NewModel parses the embedded authorization model.
func NewModel() (model.Model, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, fmt.Errorf("failed to parse authorization model: %w", err)
	}
	return m, nil
}

// NewEnforcer creates a Casbin enforcer whose policies live in the casbin_rule
// table of the given database.
func NewEnforcer(driverName, dsn string) (*casbin.Enforcer, error) {
	m, err := NewModel()
	if err != nil {
		return nil, err
	}

	adapter := sqlxadapter.NewAdapterFromOptions(&sqlxadapter.AdapterOptions{
		DriverName:     driverName,
		DataSourceName: dsn,
		TableName:      "casbin_rule",
	})

	enforcer, err := casbin.NewEnforcer(m, adapter)
	if err != nil {
		return nil, fmt.Errorf("failed to create enforcer: %w", err)
	}
	enforcer.AddFunction("keyMatch2", util.KeyMatch2Func)

	if err := enforcer.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("failed to load policies: %w", err)
	}
	return enforcer, nil
}
