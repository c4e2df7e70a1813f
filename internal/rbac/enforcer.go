package rbac

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

// defaultPolicies maps the four platform roles onto resource/action
// pairs. Company-level scoping is not expressed here; that stays in
// domain.CanAccessCompany inside the services.
var defaultPolicies = [][]string{
	{"ADMIN", "companies", "read"},
	{"ADMIN", "companies", "update"},
	{"ADMIN", "employees", "create"},
	{"ADMIN", "employees", "read"},
	{"ADMIN", "employees", "update"},
	{"ADMIN", "rates", "read"},
	{"ADMIN", "rates", "update"},
	{"ADMIN", "attendances", "create"},
	{"ADMIN", "attendances", "read"},
	{"ADMIN", "payruns", "create"},
	{"ADMIN", "payruns", "read"},
	{"ADMIN", "payruns", "update"},
	{"ADMIN", "payruns", "approve"},
	{"ADMIN", "payruns", "close"},
	{"ADMIN", "payruns", "delete"},
	{"ADMIN", "payslips", "read"},
	{"ADMIN", "payslips", "update"},
	{"ADMIN", "payments", "create"},
	{"ADMIN", "payments", "read"},
	{"ADMIN", "payments", "update"},
	{"ADMIN", "payments", "delete"},

	{"CAISSIER", "payruns", "read"},
	{"CAISSIER", "payslips", "read"},
	{"CAISSIER", "payments", "create"},
	{"CAISSIER", "payments", "read"},
	{"CAISSIER", "payments", "update"},
	{"CAISSIER", "payments", "delete"},

	{"VIGILE", "attendances", "create"},
	{"VIGILE", "attendances", "read"},
}

// roleInheritance gives SUPERADMIN every permission held by the other
// roles plus companies/employees administration it alone owns.
var roleInheritance = [][]string{
	{"SUPERADMIN", "ADMIN"},
	{"SUPERADMIN", "CAISSIER"},
	{"SUPERADMIN", "VIGILE"},
}

var superAdminOnly = [][]string{
	{"SUPERADMIN", "companies", "create"},
	{"SUPERADMIN", "companies", "delete"},
	{"SUPERADMIN", "employees", "delete"},
}

func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	for _, p := range defaultPolicies {
		if _, err := e.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}
	for _, p := range superAdminOnly {
		if _, err := e.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}
	for _, g := range roleInheritance {
		if _, err := e.AddGroupingPolicy(g[0], g[1]); err != nil {
			return nil, err
		}
	}

	return e, nil
}
