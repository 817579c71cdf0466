package models

import "gorm.io/gorm"

// OrgUnit is one organizational sub-unit (civic platform, education
// agency, sports production). Projects are attached to units many-to-many.
type OrgUnit struct {
	gorm.Model
	Name string `gorm:"type:varchar(120);uniqueIndex;not null" json:"name"`
	Slug string `gorm:"type:varchar(120);uniqueIndex;not null" json:"slug"`

	Projects []*Project `gorm:"many2many:project_units;" json:"-"`
}
