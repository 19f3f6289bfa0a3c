package services

import (
	"testing"

	"github.com/al-alloush/blogapi/pkg/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestCanManageBlog(t *testing.T) {
	account := func(id uint, role string) models.Account {
		out := models.Account{Role: role}
		out.ID = id
		return out
	}

	testCases := []struct {
		name    string
		actor   models.Account
		owner   models.Account
		allowed bool
	}{
		{"owner manages own blog", account(1, models.RoleEditor), account(1, models.RoleEditor), true},
		{"super admin manages anything", account(1, models.RoleSuperAdmin), account(2, models.RoleSuperAdmin), true},
		{"admin cannot touch admin", account(1, models.RoleAdmin), account(2, models.RoleAdmin), false},
		{"admin cannot touch super admin", account(1, models.RoleAdmin), account(2, models.RoleSuperAdmin), false},
		{"admin manages editor", account(1, models.RoleAdmin), account(2, models.RoleEditor), true},
		{"editor cannot touch editor", account(1, models.RoleEditor), account(2, models.RoleEditor), false},
		{"editor cannot touch admin", account(1, models.RoleEditor), account(2, models.RoleAdmin), false},
		{"editor cannot touch super admin", account(1, models.RoleEditor), account(2, models.RoleSuperAdmin), false},
		{"editor manages visitor owned", account(1, models.RoleEditor), account(2, models.RoleVisitor), true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, CanManageBlog(tc.actor, tc.owner))
		})
	}
}

func TestRoleRank(t *testing.T) {
	assert.Greater(t, models.RoleRank(models.RoleSuperAdmin), models.RoleRank(models.RoleAdmin))
	assert.Greater(t, models.RoleRank(models.RoleAdmin), models.RoleRank(models.RoleEditor))
	assert.Greater(t, models.RoleRank(models.RoleEditor), models.RoleRank(models.RoleVisitor))
	assert.Less(t, models.RoleRank("Unknown"), models.RoleRank(models.RoleVisitor))
}
