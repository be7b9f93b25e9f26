// internal/domain/models/roles.go
package models

// Role represents a platform role option.
type Role struct {
	Value string // The value stored in the database
	Label string // The display label in the UI
}

// AllRoles contains every supported platform role. Used for validation and
// as the reference list of possible values.
var AllRoles = []Role{
	{Value: "admin", Label: "Administrator"},
	{Value: "student", Label: "Student"},
	{Value: "teacher", Label: "Teacher"},
	{Value: "parent", Label: "Parent"},
}

// IsValidRole checks if a value is a valid platform role.
func IsValidRole(value string) bool {
	for _, r := range AllRoles {
		if r.Value == value {
			return true
		}
	}
	return false
}

// RoleValues returns just the values of all roles.
func RoleValues() []string {
	values := make([]string, len(AllRoles))
	for i, r := range AllRoles {
		values[i] = r.Value
	}
	return values
}
