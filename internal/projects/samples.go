package projects

import "time"

// SampleProjects is the fixed seed written to local storage the first time the
// backend cannot be reached and nothing has been stored yet.
func SampleProjects() []Project {
	created := time.Date(2024, time.January, 15, 9, 0, 0, 0, time.UTC)

	samples := []Project{
		{
			ID:            "1",
			Name:          "Desert Bloom Rebrand",
			NameAr:        "إعادة هوية ديزرت بلوم",
			Description:   "A complete identity refresh for a boutique floral studio.",
			DescriptionAr: "تجديد كامل للهوية البصرية لاستوديو زهور فاخر.",
			Purpose:       "Reposition the brand for a premium audience.",
			ClientName:    "Desert Bloom",
			Year:          2024,
			ProjectType:   TypeBranding,
			CoverImage:    "/images/portfolio/desert-bloom.jpg",
		},
		{
			ID:            "2",
			Name:          "Souq Online Storefront",
			NameAr:        "متجر سوق الإلكتروني",
			Description:   "A bilingual e-commerce website with right-to-left checkout.",
			DescriptionAr: "موقع تجارة إلكترونية ثنائي اللغة مع دفع من اليمين إلى اليسار.",
			Purpose:       "Move a family retailer online.",
			ClientName:    "Souq Co.",
			Year:          2023,
			ProjectType:   TypeWebsites,
			CoverImage:    "/images/portfolio/souq-online.jpg",
		},
		{
			ID:            "3",
			Name:          "Ramadan Nights Campaign",
			NameAr:        "حملة ليالي رمضان",
			Description:   "An integrated outdoor and social campaign.",
			DescriptionAr: "حملة متكاملة في الطرقات ووسائل التواصل الاجتماعي.",
			Purpose:       "Drive seasonal footfall to flagship stores.",
			ClientName:    "Nakheel Malls",
			Year:          2024,
			ProjectType:   TypeAdvertising,
			CoverImage:    "/images/portfolio/ramadan-nights.jpg",
		},
		{
			ID:            "4",
			Name:          "Falcon Logistics Mark",
			NameAr:        "شعار فالكون للخدمات اللوجستية",
			Description:   "A geometric logo system for a freight company.",
			DescriptionAr: "نظام شعار هندسي لشركة شحن.",
			Purpose:       "Unify five subsidiaries under one mark.",
			ClientName:    "Falcon Logistics",
			Year:          2022,
			ProjectType:   TypeLogos,
			CoverImage:    "/images/portfolio/falcon-logistics.jpg",
		},
		{
			ID:            "5",
			Name:          "Oud & Amber Product Shoot",
			NameAr:        "جلسة تصوير منتجات عود وعنبر",
			Description:   "Studio product photography for a fragrance launch.",
			DescriptionAr: "تصوير منتجات في الاستوديو لإطلاق عطر جديد.",
			Purpose:       "Launch imagery for web and print.",
			ClientName:    "Oud & Amber",
			Year:          2023,
			ProjectType:   TypePhotography,
			CoverImage:    "/images/portfolio/oud-amber.jpg",
		},
	}

	for i := range samples {
		samples[i].Slug = Slugify(samples[i].Name)
		samples[i].Tags = TagsFor(samples[i].ProjectType)
		samples[i].Status = StatusPublished
		samples[i].CreatedAt = created
		samples[i].UpdatedAt = created
		samples[i].Source = SourceLocal
	}
	return samples
}
