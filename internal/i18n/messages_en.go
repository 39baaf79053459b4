package i18n

// englishMessages contains all English flat messages.
var englishMessages = map[string]string{
	// Error messages
	"error.generic":             "Something went wrong. Please try again.",
	"error.invalid_body":        "The request body is invalid.",
	"error.not_found":           "The requested item could not be found.",
	"error.project_not_found":   "Project %s was not found.",
	"error.unsupported_locale":  "Unsupported language %q. Use one of: %s.",
	"error.unauthorized":        "Please sign in to the admin dashboard.",
	"error.invalid_credentials": "Invalid email or password.",
	"error.throttled":           "Too many messages. Please wait a minute and try again.",
	"error.invalid_rating":      "Rating must be between 1 and 5.",

	// Success messages
	"success.project_created":     "Project %q created.",
	"success.project_updated":     "Project %q updated.",
	"success.project_deleted":     "Project deleted.",
	"success.contact_sent":        "Thank you! We will get back to you shortly.",
	"success.testimonial_saved":   "Testimonial saved.",
	"success.testimonial_deleted": "Testimonial deleted.",
	"success.logged_in":           "Welcome back, %s.",
	"success.logged_out":          "You have been signed out.",

	// Status messages
	"status.backend_active": "Connected to the content server.",
	"status.local_fallback": "Working offline. Changes are saved on this device only.",
	"status.loading":        "Loading content...",
}

var englishTree = Tree{
	Nav: NavStrings{
		Home:      "Home",
		Services:  "Services",
		Portfolio: "Portfolio",
		About:     "About",
		Contact:   "Contact",
		Language:  "العربية",
	},
	Hero: HeroStrings{
		Title:     "We Build Brands That Move People",
		Subtitle:  "A creative digital agency crafting identities, websites and campaigns.",
		CTA:       "Start a Project",
		Secondary: "View Our Work",
	},
	Services: ServicesStrings{
		Title:    "Our Services",
		Subtitle: "Everything your brand needs, under one roof.",
		Branding: ServiceItem{
			Title:       "Branding",
			Description: "Brand strategy and visual identity systems that stand out.",
		},
		Websites: ServiceItem{
			Title:       "Websites",
			Description: "Fast, responsive websites designed to convert.",
		},
		Advertising: ServiceItem{
			Title:       "Advertising",
			Description: "Campaigns across digital and print that reach the right audience.",
		},
		Logos: ServiceItem{
			Title:       "Logo Design",
			Description: "Memorable marks built to last.",
		},
		Photography: ServiceItem{
			Title:       "Photography",
			Description: "Product and lifestyle photography that tells your story.",
		},
	},
	Portfolio: PortfolioStrings{
		Title:       "Our Work",
		Subtitle:    "Selected projects from our studio.",
		All:         "All",
		ViewProject: "View Project",
		Client:      "Client",
		Year:        "Year",
		Purpose:     "Purpose",
		Empty:       "No projects yet.",
	},
	About: AboutStrings{
		Title:   "About Us",
		Story:   "We are a team of designers, developers and storytellers.",
		Mission: "Our mission is to help brands communicate with clarity and character.",
		Vision:  "To be the region's most trusted creative partner.",
	},
	Testimonials: TestimonialsStrings{
		Title:    "What Our Clients Say",
		Subtitle: "Trusted by businesses across the region.",
	},
	Contact: ContactStrings{
		Title:     "Get in Touch",
		Subtitle:  "Tell us about your project.",
		Name:      "Name",
		Email:     "Email",
		Phone:     "Phone",
		Service:   "Service",
		Message:   "Message",
		Send:      "Send Message",
		Success:   "Thank you! We will get back to you shortly.",
		Error:     "Your message could not be sent. Please try again.",
		Throttled: "Too many messages. Please wait a minute and try again.",
	},
	Footer: FooterStrings{
		Tagline: "Creative digital agency.",
		Rights:  "All rights reserved.",
	},
	Admin: AdminStrings{
		Dashboard:    "Dashboard",
		Projects:     "Projects",
		Testimonials: "Testimonials",
		Login:        "Sign In",
		Logout:       "Sign Out",
		Add:          "Add",
		Edit:         "Edit",
		Delete:       "Delete",
		Save:         "Save",
		Cancel:       "Cancel",
		OfflineMode:  "Offline mode: changes are stored on this device.",
	},
}
