// Package testimonials reads and manages client testimonials. Reads degrade to
// a fixed sample set when the backend is unreachable; nothing is stored locally.
package testimonials

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"agencysite/internal/i18n"
)

const (
	MinRating = 1
	MaxRating = 5
)

var (
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	ErrMissingField  = errors.New("missing required field")
)

// Testimonial mirrors the backend record. English fields are required, the
// Arabic ones optional.
type Testimonial struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	NameAr      string    `json:"name_ar"`
	Role        string    `json:"role"`
	RoleAr      string    `json:"role_ar"`
	Company     string    `json:"company"`
	CompanyAr   string    `json:"company_ar"`
	Text        string    `json:"text"`
	TextAr      string    `json:"text_ar"`
	Rating      int       `json:"rating"`
	ImageURL    string    `json:"image_url,omitempty"`
	IsFeatured  bool      `json:"is_featured"`
	IsPublished bool      `json:"is_published"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Input is the writable part of a testimonial.
type Input struct {
	Name        string `json:"name"`
	NameAr      string `json:"name_ar"`
	Role        string `json:"role"`
	RoleAr      string `json:"role_ar"`
	Company     string `json:"company"`
	CompanyAr   string `json:"company_ar"`
	Text        string `json:"text"`
	TextAr      string `json:"text_ar"`
	Rating      int    `json:"rating"`
	ImageURL    string `json:"image_url,omitempty"`
	IsFeatured  bool   `json:"is_featured"`
	IsPublished bool   `json:"is_published"`
	Order       int    `json:"order"`
}

func (in Input) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name", ErrMissingField)
	}
	if strings.TrimSpace(in.Text) == "" {
		return fmt.Errorf("%w: text", ErrMissingField)
	}
	if in.Rating < MinRating || in.Rating > MaxRating {
		return fmt.Errorf("%w: got %d", ErrInvalidRating, in.Rating)
	}
	return nil
}

// View is a testimonial resolved for one locale.
type View struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Company  string `json:"company"`
	Text     string `json:"text"`
	Rating   int    `json:"rating"`
	ImageURL string `json:"imageUrl,omitempty"`
	Featured bool   `json:"featured"`
}

// Display picks the Arabic variant of each field only when the locale is
// Arabic and that variant is non-empty.
func (t Testimonial) Display(locale i18n.Locale) View {
	return View{
		ID:       t.ID,
		Name:     i18n.Pick(locale, t.Name, t.NameAr),
		Role:     i18n.Pick(locale, t.Role, t.RoleAr),
		Company:  i18n.Pick(locale, t.Company, t.CompanyAr),
		Text:     i18n.Pick(locale, t.Text, t.TextAr),
		Rating:   t.Rating,
		ImageURL: t.ImageURL,
		Featured: t.IsFeatured,
	}
}

// SortForDisplay returns the published testimonials ordered by Order, then id.
func SortForDisplay(list []Testimonial) []Testimonial {
	out := make([]Testimonial, 0, len(list))
	for _, t := range list {
		if t.IsPublished {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func Featured(list []Testimonial) []Testimonial {
	var out []Testimonial
	for _, t := range list {
		if t.IsFeatured {
			out = append(out, t)
		}
	}
	return out
}
