package testimonials

import (
	"errors"
	"testing"

	"agencysite/internal/i18n"
)

func TestInputValidate(t *testing.T) {
	valid := Input{Name: "Ali", Text: "Great work", Rating: 5}

	tests := []struct {
		name     string
		mutate   func(*Input)
		expected error
	}{
		{"valid", func(*Input) {}, nil},
		{"lowest rating", func(in *Input) { in.Rating = 1 }, nil},
		{"rating zero", func(in *Input) { in.Rating = 0 }, ErrInvalidRating},
		{"rating six", func(in *Input) { in.Rating = 6 }, ErrInvalidRating},
		{"missing name", func(in *Input) { in.Name = " " }, ErrMissingField},
		{"missing text", func(in *Input) { in.Text = "" }, ErrMissingField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			err := in.Validate()
			if tt.expected == nil && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if tt.expected != nil && !errors.Is(err, tt.expected) {
				t.Errorf("Validate() = %v, expected %v", err, tt.expected)
			}
		})
	}
}

func TestDisplay(t *testing.T) {
	record := Testimonial{
		ID:      1,
		Name:    "Sarah",
		NameAr:  "",
		Role:    "Director",
		RoleAr:  "مديرة",
		Company: "Gulf Horizons",
		Text:    "Excellent",
		TextAr:  "ممتاز",
		Rating:  5,
	}

	tests := []struct {
		locale   i18n.Locale
		expected View
	}{
		{i18n.English, View{ID: 1, Name: "Sarah", Role: "Director", Company: "Gulf Horizons", Text: "Excellent", Rating: 5}},
		// an empty Arabic name falls back to English
		{i18n.Arabic, View{ID: 1, Name: "Sarah", Role: "مديرة", Company: "Gulf Horizons", Text: "ممتاز", Rating: 5}},
	}

	for _, tt := range tests {
		t.Run(string(tt.locale), func(t *testing.T) {
			if got := record.Display(tt.locale); got != tt.expected {
				t.Errorf("Display(%s) = %+v, expected %+v", tt.locale, got, tt.expected)
			}
		})
	}
}

func TestSortForDisplay(t *testing.T) {
	list := []Testimonial{
		{ID: 4, Order: 2, IsPublished: true},
		{ID: 3, Order: 1, IsPublished: true},
		{ID: 1, Order: 2, IsPublished: true},
		{ID: 2, Order: 0, IsPublished: false},
	}

	got := SortForDisplay(list)

	expected := []int{3, 1, 4}
	if len(got) != len(expected) {
		t.Fatalf("SortForDisplay() returned %d items, expected %d", len(got), len(expected))
	}
	for i, id := range expected {
		if got[i].ID != id {
			t.Errorf("SortForDisplay()[%d].ID = %d, expected %d", i, got[i].ID, id)
		}
	}
}

func TestFeatured(t *testing.T) {
	got := Featured(FallbackTestimonials())
	if len(got) != 2 {
		t.Errorf("Featured() returned %d items, expected 2", len(got))
	}
}

func TestFallbackTestimonials(t *testing.T) {
	samples := FallbackTestimonials()
	if len(samples) != 3 {
		t.Fatalf("FallbackTestimonials() returned %d items, expected 3", len(samples))
	}
	for _, s := range samples {
		in := Input{Name: s.Name, Text: s.Text, Rating: s.Rating}
		if err := in.Validate(); err != nil {
			t.Errorf("sample %d is invalid: %v", s.ID, err)
		}
		if s.NameAr == "" || s.TextAr == "" {
			t.Errorf("sample %d is missing Arabic text", s.ID)
		}
	}
}
