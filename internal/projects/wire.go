package projects

import (
	"bytes"
	"encoding/json"
	"time"
)

// WireID accepts both numeric and string ids from the backend.
type WireID string

func (id *WireID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = WireID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = WireID(n.String())
	return nil
}

// WireProject is the backend's record shape.
type WireProject struct {
	ID            WireID    `json:"id"`
	Title         string    `json:"title"`
	TitleAr       string    `json:"title_ar"`
	Description   string    `json:"description"`
	DescriptionAr string    `json:"description_ar"`
	Purpose       string    `json:"purpose"`
	ClientName    string    `json:"client_name"`
	Year          int       `json:"year"`
	Category      string    `json:"category"`
	Tags          []string  `json:"tags"`
	ImageURL      string    `json:"image_url"`
	Slug          string    `json:"slug"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ToFrontend maps a backend record onto the canonical Project. Missing tags
// are derived from the category; a missing slug is derived from the title.
func ToFrontend(w WireProject) Project {
	projectType := ProjectType(w.Category)

	tags := append([]string(nil), w.Tags...)
	if len(tags) == 0 {
		tags = TagsFor(projectType)
	}

	slug := w.Slug
	if slug == "" {
		slug = Slugify(w.Title)
	}

	status := Status(w.Status)
	if status == "" {
		status = StatusPublished
	}

	return Project{
		ID:            string(w.ID),
		Name:          w.Title,
		NameAr:        w.TitleAr,
		Description:   w.Description,
		DescriptionAr: w.DescriptionAr,
		Purpose:       w.Purpose,
		ClientName:    w.ClientName,
		Year:          w.Year,
		ProjectType:   projectType,
		Tags:          tags,
		CoverImage:    w.ImageURL,
		Slug:          slug,
		Status:        status,
		CreatedAt:     w.CreatedAt,
		UpdatedAt:     w.UpdatedAt,
		Source:        SourceBackend,
	}
}

// ToWire translates only the fields present in the patch. Absent fields are
// omitted from the payload, never sent as null.
func ToWire(p Patch) map[string]any {
	out := make(map[string]any)
	if p.Name != nil {
		out["title"] = *p.Name
		out["slug"] = Slugify(*p.Name)
	}
	if p.NameAr != nil {
		out["title_ar"] = *p.NameAr
	}
	if p.Description != nil {
		out["description"] = *p.Description
	}
	if p.DescriptionAr != nil {
		out["description_ar"] = *p.DescriptionAr
	}
	if p.Purpose != nil {
		out["purpose"] = *p.Purpose
	}
	if p.ClientName != nil {
		out["client_name"] = *p.ClientName
	}
	if p.Year != nil {
		out["year"] = *p.Year
	}
	if p.ProjectType != nil {
		out["category"] = string(*p.ProjectType)
	}
	if p.Tags != nil {
		out["tags"] = append([]string{}, (*p.Tags)...)
	}
	if p.CoverImage != nil {
		out["image_url"] = *p.CoverImage
	}
	if p.Status != nil {
		out["status"] = string(*p.Status)
	}
	return out
}

// DraftPatch expresses a full draft as a patch so creation shares ToWire.
func DraftPatch(d Draft) Patch {
	status := StatusPublished
	patch := Patch{
		Name:          &d.Name,
		NameAr:        &d.NameAr,
		Description:   &d.Description,
		DescriptionAr: &d.DescriptionAr,
		Purpose:       &d.Purpose,
		ClientName:    &d.ClientName,
		Year:          &d.Year,
		ProjectType:   &d.ProjectType,
		CoverImage:    &d.CoverImage,
		Status:        &status,
	}
	if d.Tags != nil {
		tags := d.Tags
		patch.Tags = &tags
	}
	return patch
}
