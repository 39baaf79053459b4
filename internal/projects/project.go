// Package projects holds the portfolio project domain, the mapping to and from
// the backend wire shape, and the Provider that keeps the project list usable
// whether or not the backend is reachable.
package projects

import (
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"agencysite/internal/i18n"
)

// ProjectType is the portfolio category of a project.
type ProjectType string

const (
	TypeBranding    ProjectType = "branding"
	TypeWebsites    ProjectType = "websites"
	TypeAdvertising ProjectType = "advertising"
	TypeLogos       ProjectType = "logos"
	TypePhotography ProjectType = "photography"
)

// Status is the publication state of a project.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

// Source records which store materialized a record.
type Source string

const (
	SourceBackend Source = "backend"
	SourceLocal   Source = "local"
)

var (
	// ErrNotFound is returned when an id does not exist.
	ErrNotFound = errors.New("project not found")
	// ErrInvalidDraft is returned for drafts without a name.
	ErrInvalidDraft = errors.New("project name is required")
)

// Project is the canonical frontend record, shared by both backing stores.
type Project struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	NameAr        string      `json:"nameAr,omitempty"`
	Description   string      `json:"description"`
	DescriptionAr string      `json:"descriptionAr,omitempty"`
	Purpose       string      `json:"purpose"`
	ClientName    string      `json:"clientName"`
	Year          int         `json:"year"`
	ProjectType   ProjectType `json:"projectType"`
	Tags          []string    `json:"tags"`
	CoverImage    string      `json:"coverImage"`
	Slug          string      `json:"slug"`
	Status        Status      `json:"status"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
	Source        Source      `json:"source"`
}

// Draft is the input to Add: everything except id, slug, status and timestamps.
type Draft struct {
	Name          string      `json:"name"`
	NameAr        string      `json:"nameAr,omitempty"`
	Description   string      `json:"description"`
	DescriptionAr string      `json:"descriptionAr,omitempty"`
	Purpose       string      `json:"purpose"`
	ClientName    string      `json:"clientName"`
	Year          int         `json:"year"`
	ProjectType   ProjectType `json:"projectType"`
	Tags          []string    `json:"tags"`
	CoverImage    string      `json:"coverImage"`
}

func (d Draft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return ErrInvalidDraft
	}
	return nil
}

// Patch is a partial update. Nil fields are left untouched.
type Patch struct {
	Name          *string      `json:"name,omitempty"`
	NameAr        *string      `json:"nameAr,omitempty"`
	Description   *string      `json:"description,omitempty"`
	DescriptionAr *string      `json:"descriptionAr,omitempty"`
	Purpose       *string      `json:"purpose,omitempty"`
	ClientName    *string      `json:"clientName,omitempty"`
	Year          *int         `json:"year,omitempty"`
	ProjectType   *ProjectType `json:"projectType,omitempty"`
	Tags          *[]string    `json:"tags,omitempty"`
	CoverImage    *string      `json:"coverImage,omitempty"`
	Status        *Status      `json:"status,omitempty"`
}

// Apply merges the patch into p. The slug follows the name; UpdatedAt is set
// to now.
func (p Patch) Apply(project Project, now time.Time) Project {
	if p.Name != nil {
		project.Name = *p.Name
		project.Slug = Slugify(*p.Name)
	}
	if p.NameAr != nil {
		project.NameAr = *p.NameAr
	}
	if p.Description != nil {
		project.Description = *p.Description
	}
	if p.DescriptionAr != nil {
		project.DescriptionAr = *p.DescriptionAr
	}
	if p.Purpose != nil {
		project.Purpose = *p.Purpose
	}
	if p.ClientName != nil {
		project.ClientName = *p.ClientName
	}
	if p.Year != nil {
		project.Year = *p.Year
	}
	if p.ProjectType != nil {
		project.ProjectType = *p.ProjectType
	}
	if p.Tags != nil {
		project.Tags = append([]string(nil), (*p.Tags)...)
	}
	if p.CoverImage != nil {
		project.CoverImage = *p.CoverImage
	}
	if p.Status != nil {
		project.Status = *p.Status
	}
	project.UpdatedAt = now
	return project
}

func (p Project) DisplayName(locale i18n.Locale) string {
	return i18n.Pick(locale, p.Name, p.NameAr)
}

func (p Project) DisplayDescription(locale i18n.Locale) string {
	return i18n.Pick(locale, p.Description, p.DescriptionAr)
}

func (p Project) clone() Project {
	if p.Tags != nil {
		p.Tags = append([]string(nil), p.Tags...)
	}
	return p
}

var (
	slugDisallowed = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSpaces     = regexp.MustCompile(`\s+`)
	slugHyphens    = regexp.MustCompile(`-+`)
)

// Slugify derives the URL-safe slug from a name: accents are folded, the
// result lowercased, anything outside [a-z0-9 -] dropped, whitespace runs turned
// into hyphens and hyphen runs collapsed.
func Slugify(name string) string {
	decomposed := norm.NFKD.String(name)

	var folded strings.Builder
	for _, r := range decomposed {
		if !unicode.IsMark(r) {
			folded.WriteRune(r)
		}
	}

	slug := strings.ToLower(folded.String())
	slug = slugDisallowed.ReplaceAllString(slug, "")
	slug = slugSpaces.ReplaceAllString(slug, "-")
	slug = slugHyphens.ReplaceAllString(slug, "-")
	return slug
}

var typeTags = map[ProjectType][]string{
	TypeBranding:    {"Branding", "Identity"},
	TypeWebsites:    {"Web Design", "Development"},
	TypeAdvertising: {"Advertising", "Campaign"},
	TypeLogos:       {"Logo", "Identity"},
	TypePhotography: {"Photography", "Visual"},
}

// TagsFor returns the fixed tag list for a project type. Unknown types pass
// through as a single tag holding the raw type.
func TagsFor(projectType ProjectType) []string {
	if tags, ok := typeTags[projectType]; ok {
		return append([]string(nil), tags...)
	}
	return []string{string(projectType)}
}
