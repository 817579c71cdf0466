package models

import "gorm.io/gorm"

// ProjectDetail is the optional rich detail page behind a project card:
// hero cover, video, long body, SEO metadata and two owned image
// collections (slider gallery and the masonry grid at the bottom).
type ProjectDetail struct {
	gorm.Model
	Slug          string `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	TitleOverride string `gorm:"type:varchar(255)" json:"title_override,omitempty"`
	Subtitle      string `gorm:"type:varchar(255)" json:"subtitle,omitempty"`
	Lead          string `json:"lead,omitempty"`
	Body          string `json:"body,omitempty"`

	CoverPath       string `json:"cover_path,omitempty"`
	VideoURL        string `json:"video_url,omitempty"`
	VideoPath       string `json:"video_path,omitempty"`
	VideoPosterPath string `json:"video_poster_path,omitempty"`

	// Optional overrides of the owning project's text blocks.
	Goal     string `json:"goal,omitempty"`
	Partners string `json:"partners,omitempty"`
	Results  string `json:"results,omitempty"`

	SEOTitle       string `gorm:"type:varchar(255)" json:"seo_title,omitempty"`
	SEODescription string `json:"seo_description,omitempty"`
	OGImagePath    string `json:"og_image_path,omitempty"`

	IsPublished bool `gorm:"default:true;not null" json:"is_published"`

	Images     []DetailImage     `gorm:"constraint:OnDelete:CASCADE;" json:"images,omitempty"`
	GridImages []DetailGridImage `gorm:"constraint:OnDelete:CASCADE;" json:"grid_images,omitempty"`
}

// DetailImage is one image of the detail page slider gallery.
// Positions are not required to be contiguous; ingestion always appends
// at max(position)+1.
type DetailImage struct {
	gorm.Model
	ProjectDetailID uint   `gorm:"index;not null" json:"-"`
	Path            string `gorm:"not null" json:"path"`
	Alt             string `gorm:"type:varchar(255)" json:"alt,omitempty"`
	Position        int    `gorm:"default:0;not null;index" json:"position"`
}

// DetailGridImage is one image of the masonry grid at the bottom of the
// detail page. Same ordering semantics as DetailImage.
type DetailGridImage struct {
	gorm.Model
	ProjectDetailID uint   `gorm:"index;not null" json:"-"`
	Path            string `gorm:"not null" json:"path"`
	Alt             string `gorm:"type:varchar(255)" json:"alt,omitempty"`
	Position        int    `gorm:"default:0;not null;index" json:"position"`
}
