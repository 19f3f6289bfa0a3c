package models

import "strings"

const (
	RoleVisitor    = "Visitor"
	RoleEditor     = "Editor"
	RoleAdmin      = "Admin"
	RoleSuperAdmin = "SuperAdmin"
)

var roleRanks = map[string]int{
	RoleVisitor:    0,
	RoleEditor:     1,
	RoleAdmin:      2,
	RoleSuperAdmin: 3,
}

// RoleRank maps a role name to its position in the hierarchy.
// Unknown roles rank below Visitor.
func RoleRank(role string) int {
	if rank, ok := roleRanks[role]; ok {
		return rank
	}
	return -1
}

type Account struct {
	BaseModel

	Name  string `json:"name" gorm:"uniqueIndex"`
	Nick  string `json:"nick"`
	Email string `json:"email" gorm:"uniqueIndex"`
	Role  string `json:"role"`

	// Comma separated list of preferred language codes, e.g. "ar,en,"
	SelectedLanguages string `json:"selected_languages"`

	Blogs []Blog `json:"blogs"`
}

// PreferredLanguages splits the selected languages into a clean list,
// dropping the empty segments a trailing comma leaves behind.
func (v Account) PreferredLanguages() []string {
	var out []string
	for _, lang := range strings.Split(v.SelectedLanguages, ",") {
		if lang = strings.TrimSpace(lang); len(lang) > 0 {
			out = append(out, lang)
		}
	}
	return out
}
