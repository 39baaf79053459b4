package i18n

// Tree is the nested string tree for one locale. Consumers index into it
// directly, so a missing path fails to compile instead of rendering a key.
type Tree struct {
	Nav          NavStrings          `json:"nav"`
	Hero         HeroStrings         `json:"hero"`
	Services     ServicesStrings     `json:"services"`
	Portfolio    PortfolioStrings    `json:"portfolio"`
	About        AboutStrings        `json:"about"`
	Testimonials TestimonialsStrings `json:"testimonials"`
	Contact      ContactStrings      `json:"contact"`
	Footer       FooterStrings       `json:"footer"`
	Admin        AdminStrings        `json:"admin"`
}

type NavStrings struct {
	Home      string `json:"home"`
	Services  string `json:"services"`
	Portfolio string `json:"portfolio"`
	About     string `json:"about"`
	Contact   string `json:"contact"`
	Language  string `json:"language"`
}

type HeroStrings struct {
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	CTA       string `json:"cta"`
	Secondary string `json:"secondary"`
}

type ServiceItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type ServicesStrings struct {
	Title       string      `json:"title"`
	Subtitle    string      `json:"subtitle"`
	Branding    ServiceItem `json:"branding"`
	Websites    ServiceItem `json:"websites"`
	Advertising ServiceItem `json:"advertising"`
	Logos       ServiceItem `json:"logos"`
	Photography ServiceItem `json:"photography"`
}

type PortfolioStrings struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	All         string `json:"all"`
	ViewProject string `json:"viewProject"`
	Client      string `json:"client"`
	Year        string `json:"year"`
	Purpose     string `json:"purpose"`
	Empty       string `json:"empty"`
}

type AboutStrings struct {
	Title   string `json:"title"`
	Story   string `json:"story"`
	Mission string `json:"mission"`
	Vision  string `json:"vision"`
}

type TestimonialsStrings struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

type ContactStrings struct {
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Service   string `json:"service"`
	Message   string `json:"message"`
	Send      string `json:"send"`
	Success   string `json:"success"`
	Error     string `json:"error"`
	Throttled string `json:"throttled"`
}

type FooterStrings struct {
	Tagline string `json:"tagline"`
	Rights  string `json:"rights"`
}

type AdminStrings struct {
	Dashboard    string `json:"dashboard"`
	Projects     string `json:"projects"`
	Testimonials string `json:"testimonials"`
	Login        string `json:"login"`
	Logout       string `json:"logout"`
	Add          string `json:"add"`
	Edit         string `json:"edit"`
	Delete       string `json:"delete"`
	Save         string `json:"save"`
	Cancel       string `json:"cancel"`
	OfflineMode  string `json:"offlineMode"`
}
