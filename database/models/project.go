package models

import "gorm.io/gorm"

// Project is one entry of the public project catalog.
type Project struct {
	gorm.Model
	Title       string `gorm:"type:varchar(255);not null" json:"title"`
	Slug        string `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	Description string `gorm:"not null" json:"description"`
	Goal        string `json:"goal,omitempty"`
	Partners    string `json:"partners,omitempty"`
	Results     string `json:"results,omitempty"`

	// IsReverse flips the card layout (text left, photo right) globally.
	// The per-page flags override it on the matching unit landing page.
	IsReverse          bool `gorm:"default:false;not null" json:"is_reverse"`
	IsReversePlatform  bool `gorm:"default:false;not null" json:"is_reverse_platform"`
	IsReverseEducation bool `gorm:"default:false;not null" json:"is_reverse_education"`
	IsReverseSport     bool `gorm:"default:false;not null" json:"is_reverse_sport"`

	IsPublished bool `gorm:"default:true;not null" json:"is_published"`
	Position    int  `gorm:"default:0;not null;index" json:"position"`

	Units  []*OrgUnit     `gorm:"many2many:project_units;" json:"units,omitempty"`
	Images []ProjectImage `gorm:"constraint:OnDelete:CASCADE;" json:"images,omitempty"`
	Badges []ProjectBadge `gorm:"constraint:OnDelete:CASCADE;" json:"badges,omitempty"`

	DetailID *uint          `json:"detail_id,omitempty"`
	Detail   *ProjectDetail `json:"detail,omitempty"`
}

// ProjectImage is one gallery image on a project card.
type ProjectImage struct {
	gorm.Model
	ProjectID uint   `gorm:"index;not null" json:"-"`
	Path      string `gorm:"not null" json:"path"`
	Alt       string `gorm:"type:varchar(255)" json:"alt,omitempty"`
	Position  int    `gorm:"default:0;not null;index" json:"position"`
}

// ProjectBadge is a short free-text badge over the project photo
// (year, period, city).
type ProjectBadge struct {
	gorm.Model
	ProjectID uint   `gorm:"index;not null" json:"-"`
	Text      string `gorm:"type:varchar(100);not null" json:"text"`
	Position  int    `gorm:"default:0;not null;index" json:"position"`
}
