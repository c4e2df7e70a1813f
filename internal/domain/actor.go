package domain

const (
	RoleSuperAdmin = "SUPERADMIN"
	RoleAdmin      = "ADMIN"
	RoleCaissier   = "CAISSIER"
	RoleVigile     = "VIGILE"
)

func ValidRole(v string) bool {
	switch v {
	case RoleSuperAdmin, RoleAdmin, RoleCaissier, RoleVigile:
		return true
	}
	return false
}

// Actor is the already-authenticated caller every service operation
// receives. Authentication itself happens in the middleware layer.
type Actor struct {
	ID        string
	Role      string
	CompanyID string
}

// CanAccessCompany is the single company-scoping predicate applied by
// every operation that touches company-owned data. SUPERADMIN is
// unrestricted; ADMIN and CAISSIER are confined to their own company.
func CanAccessCompany(actor Actor, companyID string) bool {
	switch actor.Role {
	case RoleSuperAdmin:
		return true
	case RoleAdmin, RoleCaissier:
		return actor.CompanyID != "" && actor.CompanyID == companyID
	default:
		return false
	}
}

// CanRecordAttendance covers the gate-keeper flow: VIGILE scans badges
// for its own company, admins can correct records.
func CanRecordAttendance(actor Actor, companyID string) bool {
	switch actor.Role {
	case RoleSuperAdmin:
		return true
	case RoleAdmin, RoleVigile:
		return actor.CompanyID != "" && actor.CompanyID == companyID
	default:
		return false
	}
}
