package testimonials

import "time"

// FallbackTestimonials is shown whenever the backend cannot be read.
func FallbackTestimonials() []Testimonial {
	created := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	return []Testimonial{
		{
			ID:          1,
			Name:        "Sarah Al-Mansouri",
			NameAr:      "سارة المنصوري",
			Role:        "Marketing Director",
			RoleAr:      "مديرة التسويق",
			Company:     "Gulf Horizons",
			CompanyAr:   "آفاق الخليج",
			Text:        "They rebuilt our brand from the ground up and our customers noticed immediately.",
			TextAr:      "أعادوا بناء علامتنا التجارية من الأساس ولاحظ عملاؤنا الفرق فوراً.",
			Rating:      5,
			IsFeatured:  true,
			IsPublished: true,
			Order:       1,
			CreatedAt:   created,
			UpdatedAt:   created,
		},
		{
			ID:          2,
			Name:        "Omar Haddad",
			NameAr:      "عمر حداد",
			Role:        "Founder",
			RoleAr:      "المؤسس",
			Company:     "Haddad Coffee",
			CompanyAr:   "قهوة حداد",
			Text:        "The new website doubled our online orders within three months.",
			TextAr:      "ضاعف الموقع الجديد طلباتنا عبر الإنترنت خلال ثلاثة أشهر.",
			Rating:      5,
			IsFeatured:  true,
			IsPublished: true,
			Order:       2,
			CreatedAt:   created,
			UpdatedAt:   created,
		},
		{
			ID:          3,
			Name:        "Lina Karim",
			NameAr:      "لينا كريم",
			Role:        "Operations Manager",
			RoleAr:      "مديرة العمليات",
			Company:     "Atlas Real Estate",
			CompanyAr:   "أطلس العقارية",
			Text:        "Professional, fast and creative. The campaign exceeded every target we set.",
			TextAr:      "احترافية وسرعة وإبداع. تجاوزت الحملة كل الأهداف التي وضعناها.",
			Rating:      4,
			IsFeatured:  false,
			IsPublished: true,
			Order:       3,
			CreatedAt:   created,
			UpdatedAt:   created,
		},
	}
}
