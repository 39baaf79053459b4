package i18n

// arabicMessages contains all Arabic flat messages.
var arabicMessages = map[string]string{
	// Error messages
	"error.generic":             "حدث خطأ ما. يرجى المحاولة مرة أخرى.",
	"error.invalid_body":        "محتوى الطلب غير صالح.",
	"error.not_found":           "تعذر العثور على العنصر المطلوب.",
	"error.project_not_found":   "المشروع %s غير موجود.",
	"error.unsupported_locale":  "اللغة %q غير مدعومة. استخدم إحدى: %s.",
	"error.unauthorized":        "يرجى تسجيل الدخول إلى لوحة التحكم.",
	"error.invalid_credentials": "البريد الإلكتروني أو كلمة المرور غير صحيحة.",
	"error.throttled":           "رسائل كثيرة جدًا. يرجى الانتظار دقيقة ثم المحاولة مرة أخرى.",
	"error.invalid_rating":      "يجب أن يكون التقييم بين 1 و 5.",

	// Success messages
	"success.project_created":     "تم إنشاء المشروع %q.",
	"success.project_updated":     "تم تحديث المشروع %q.",
	"success.project_deleted":     "تم حذف المشروع.",
	"success.contact_sent":        "شكرًا لك! سنتواصل معك قريبًا.",
	"success.testimonial_saved":   "تم حفظ الرأي.",
	"success.testimonial_deleted": "تم حذف الرأي.",
	"success.logged_in":           "مرحبًا بعودتك، %s.",
	"success.logged_out":          "تم تسجيل الخروج.",

	// Status messages
	"status.backend_active": "متصل بخادم المحتوى.",
	"status.local_fallback": "العمل دون اتصال. يتم حفظ التغييرات على هذا الجهاز فقط.",
	"status.loading":        "جارٍ تحميل المحتوى...",
}

var arabicTree = Tree{
	Nav: NavStrings{
		Home:      "الرئيسية",
		Services:  "خدماتنا",
		Portfolio: "أعمالنا",
		About:     "من نحن",
		Contact:   "تواصل معنا",
		Language:  "English",
	},
	Hero: HeroStrings{
		Title:     "نصنع علامات تجارية تُلهم الناس",
		Subtitle:  "وكالة رقمية إبداعية تصمم الهويات والمواقع والحملات.",
		CTA:       "ابدأ مشروعك",
		Secondary: "شاهد أعمالنا",
	},
	Services: ServicesStrings{
		Title:    "خدماتنا",
		Subtitle: "كل ما تحتاجه علامتك التجارية في مكان واحد.",
		Branding: ServiceItem{
			Title:       "الهوية التجارية",
			Description: "استراتيجية العلامة وأنظمة الهوية البصرية المميزة.",
		},
		Websites: ServiceItem{
			Title:       "المواقع الإلكترونية",
			Description: "مواقع سريعة ومتجاوبة مصممة لتحقيق النتائج.",
		},
		Advertising: ServiceItem{
			Title:       "الإعلانات",
			Description: "حملات رقمية ومطبوعة تصل إلى الجمهور المناسب.",
		},
		Logos: ServiceItem{
			Title:       "تصميم الشعارات",
			Description: "شعارات لا تُنسى صُممت لتدوم.",
		},
		Photography: ServiceItem{
			Title:       "التصوير",
			Description: "تصوير المنتجات وأسلوب الحياة الذي يروي قصتك.",
		},
	},
	Portfolio: PortfolioStrings{
		Title:       "أعمالنا",
		Subtitle:    "مشاريع مختارة من استوديو الوكالة.",
		All:         "الكل",
		ViewProject: "عرض المشروع",
		Client:      "العميل",
		Year:        "السنة",
		Purpose:     "الهدف",
		Empty:       "لا توجد مشاريع بعد.",
	},
	About: AboutStrings{
		Title:   "من نحن",
		Story:   "نحن فريق من المصممين والمطورين ورواة القصص.",
		Mission: "مهمتنا مساعدة العلامات التجارية على التواصل بوضوح وتميّز.",
		Vision:  "أن نكون الشريك الإبداعي الأكثر ثقة في المنطقة.",
	},
	Testimonials: TestimonialsStrings{
		Title:    "ماذا يقول عملاؤنا",
		Subtitle: "موثوقون من الشركات في جميع أنحاء المنطقة.",
	},
	Contact: ContactStrings{
		Title:     "تواصل معنا",
		Subtitle:  "أخبرنا عن مشروعك.",
		Name:      "الاسم",
		Email:     "البريد الإلكتروني",
		Phone:     "الهاتف",
		Service:   "الخدمة",
		Message:   "الرسالة",
		Send:      "إرسال الرسالة",
		Success:   "شكرًا لك! سنتواصل معك قريبًا.",
		Error:     "تعذر إرسال رسالتك. يرجى المحاولة مرة أخرى.",
		Throttled: "رسائل كثيرة جدًا. يرجى الانتظار دقيقة ثم المحاولة مرة أخرى.",
	},
	Footer: FooterStrings{
		Tagline: "وكالة رقمية إبداعية.",
		Rights:  "جميع الحقوق محفوظة.",
	},
	Admin: AdminStrings{
		Dashboard:    "لوحة التحكم",
		Projects:     "المشاريع",
		Testimonials: "آراء العملاء",
		Login:        "تسجيل الدخول",
		Logout:       "تسجيل الخروج",
		Add:          "إضافة",
		Edit:         "تعديل",
		Delete:       "حذف",
		Save:         "حفظ",
		Cancel:       "إلغاء",
		OfflineMode:  "وضع عدم الاتصال: يتم حفظ التغييرات على هذا الجهاز.",
	},
}
