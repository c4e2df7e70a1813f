package domain_test

import (
	"testing"

	"github.com/Diome1804/Gestion-Salaire-sub000/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestCanAccessCompany(t *testing.T) {
	companyID := "2f0a6f4e-9f5d-4f6e-9a2b-1c3d5e7f9a0b"
	otherID := "7b1c2d3e-4f5a-6b7c-8d9e-0f1a2b3c4d5e"

	t.Run("superadmin bypasses company check", func(t *testing.T) {
		actor := domain.Actor{ID: "u1", Role: domain.RoleSuperAdmin, CompanyID: otherID}
		assert.True(t, domain.CanAccessCompany(actor, companyID))
	})

	t.Run("admin restricted to own company", func(t *testing.T) {
		actor := domain.Actor{ID: "u1", Role: domain.RoleAdmin, CompanyID: companyID}
		assert.True(t, domain.CanAccessCompany(actor, companyID))
		assert.False(t, domain.CanAccessCompany(actor, otherID))
	})

	t.Run("caissier restricted to own company", func(t *testing.T) {
		actor := domain.Actor{ID: "u1", Role: domain.RoleCaissier, CompanyID: companyID}
		assert.True(t, domain.CanAccessCompany(actor, companyID))
		assert.False(t, domain.CanAccessCompany(actor, otherID))
	})

	t.Run("vigile never accesses payroll data", func(t *testing.T) {
		actor := domain.Actor{ID: "u1", Role: domain.RoleVigile, CompanyID: companyID}
		assert.False(t, domain.CanAccessCompany(actor, companyID))
	})

	t.Run("empty company id on actor denies", func(t *testing.T) {
		actor := domain.Actor{ID: "u1", Role: domain.RoleAdmin}
		assert.False(t, domain.CanAccessCompany(actor, companyID))
	})
}

func TestCanRecordAttendance(t *testing.T) {
	companyID := "2f0a6f4e-9f5d-4f6e-9a2b-1c3d5e7f9a0b"

	actor := domain.Actor{ID: "u1", Role: domain.RoleVigile, CompanyID: companyID}
	assert.True(t, domain.CanRecordAttendance(actor, companyID))

	actor.Role = domain.RoleCaissier
	assert.False(t, domain.CanRecordAttendance(actor, companyID))
}
