package services

import "github.com/al-alloush/blogapi/pkg/internal/models"

// CanManageBlog decides whether the acting account may mutate a blog owned
// by someone else. Owners always manage their own blogs and the SuperAdmin
// manages everything; apart from that a blog is only manageable by an
// account of a strictly higher role than its owner.
func CanManageBlog(actor models.Account, owner models.Account) bool {
	if actor.ID == owner.ID {
		return true
	}
	if actor.Role == models.RoleSuperAdmin {
		return true
	}

	return models.RoleRank(actor.Role) > models.RoleRank(owner.Role)
}
