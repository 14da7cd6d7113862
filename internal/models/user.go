package models

// User role values. The spelling "Co-ordinator" is part of the wire format.
const (
	RoleAdmin       = "Admin"
	RoleCoordinator = "Co-ordinator"
)

// User is a person record belonging to exactly one organization.
type User struct {
	BaseModel

	OrganizationID uint          `gorm:"not null;index" json:"organization_id"`
	Organization   *Organization `json:"organization,omitempty"`

	Name  string `gorm:"size:255;not null" json:"name"`
	Email string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Role  string `gorm:"size:20;not null" json:"role"`
}

// ValidUserRole reports whether value is one of the enumerated roles.
func ValidUserRole(value string) bool {
	return value == RoleAdmin || value == RoleCoordinator
}
