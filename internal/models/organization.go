package models

import "gorm.io/datatypes"

// Organization status values.
const (
	OrgStatusActive   = "active"
	OrgStatusBlocked  = "blocked"
	OrgStatusInactive = "inactive"
)

// DefaultMaxCoordinators caps co-ordinator users per organization unless
// overridden on the record.
const DefaultMaxCoordinators = 5

// Organization represents a B2B tenant business entity.
type Organization struct {
	BaseModel

	Name string `gorm:"size:255;not null" json:"name"`
	Slug string `gorm:"size:255;uniqueIndex;not null" json:"slug"`

	Email             string `gorm:"size:255;not null" json:"email"`
	PrimaryAdminName  string `gorm:"size:255" json:"primary_admin_name"`
	PrimaryAdminEmail string `gorm:"size:255" json:"primary_admin_email"`

	Contact        string `gorm:"size:50" json:"contact"`
	Phone          string `gorm:"size:50" json:"phone"`
	AlternatePhone string `gorm:"size:50" json:"alternate_phone"`

	Website string `gorm:"size:255" json:"website"`
	LogoURL string `gorm:"size:500" json:"logo_url"`

	Status          string `gorm:"size:20;default:active" json:"status"`
	MaxCoordinators int    `gorm:"default:5" json:"max_coordinators"`

	Timezone string `gorm:"size:100" json:"timezone"`
	Region   string `gorm:"size:100" json:"region"`
	Language string `gorm:"size:50" json:"language"`

	Settings datatypes.JSON `json:"settings,omitempty"`

	Users []User `gorm:"foreignKey:OrganizationID" json:"users,omitempty"`
}

// ValidOrgStatus reports whether value is one of the enumerated statuses.
func ValidOrgStatus(value string) bool {
	switch value {
	case OrgStatusActive, OrgStatusBlocked, OrgStatusInactive:
		return true
	}
	return false
}
