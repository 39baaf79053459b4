package http

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"go.uber.org/zap"

	"agencysite/internal/i18n"
	"agencysite/internal/projects"
	"agencysite/internal/testimonials"
)

var (
	markdown  = goldmark.New()
	sanitizer = bluemonday.UGCPolicy()
)

// renderMarkdown turns an admin-authored description into safe HTML.
func renderMarkdown(source string) template.HTML {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(source), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(source))
	}
	return template.HTML(sanitizer.SanitizeBytes(buf.Bytes())) //nolint:gosec // sanitized above
}

type homeProject struct {
	Name        string
	Description template.HTML
	ClientName  string
	Year        int
	Tags        []string
	CoverImage  string
	Slug        string
}

type homeData struct {
	Lang         string
	Dir          string
	T            *i18n.Tree
	Projects     []homeProject
	Testimonials []testimonials.View
	Offline      bool
}

var homeTemplate = template.Must(template.New("home").Parse(`<!DOCTYPE html>
<html lang="{{.Lang}}" dir="{{.Dir}}">
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>{{.T.Hero.Title}}</title>
    <style>
        body { font-family: "Segoe UI", Tahoma, sans-serif; margin: 0; color: #222; }
        header, section, footer { padding: 24px 40px; }
        nav a { margin-inline-end: 16px; color: #0066cc; text-decoration: none; }
        .project, .testimonial { margin: 12px 0; padding: 12px; border: 1px solid #eee; }
        .tag { font-size: 0.8em; background: #f2f2f2; padding: 2px 6px; margin-inline-end: 4px; }
        .offline { background: #fff3cd; padding: 8px 40px; }
    </style>
</head>
<body>
    <header>
        <nav>
            <a href="#home">{{.T.Nav.Home}}</a>
            <a href="#services">{{.T.Nav.Services}}</a>
            <a href="#portfolio">{{.T.Nav.Portfolio}}</a>
            <a href="#about">{{.T.Nav.About}}</a>
            <a href="#contact">{{.T.Nav.Contact}}</a>
            <a href="?lang={{if eq .Lang "ar"}}en{{else}}ar{{end}}">{{.T.Nav.Language}}</a>
        </nav>
    </header>
    {{if .Offline}}<div class="offline">{{.T.Admin.OfflineMode}}</div>{{end}}

    <section id="home">
        <h1>{{.T.Hero.Title}}</h1>
        <p>{{.T.Hero.Subtitle}}</p>
        <a href="#contact">{{.T.Hero.CTA}}</a>
    </section>

    <section id="services">
        <h2>{{.T.Services.Title}}</h2>
        <p>{{.T.Services.Subtitle}}</p>
        <ul>
            <li><strong>{{.T.Services.Branding.Title}}</strong> {{.T.Services.Branding.Description}}</li>
            <li><strong>{{.T.Services.Websites.Title}}</strong> {{.T.Services.Websites.Description}}</li>
            <li><strong>{{.T.Services.Advertising.Title}}</strong> {{.T.Services.Advertising.Description}}</li>
            <li><strong>{{.T.Services.Logos.Title}}</strong> {{.T.Services.Logos.Description}}</li>
            <li><strong>{{.T.Services.Photography.Title}}</strong> {{.T.Services.Photography.Description}}</li>
        </ul>
    </section>

    <section id="portfolio">
        <h2>{{.T.Portfolio.Title}}</h2>
        {{range .Projects}}
        <div class="project" id="{{.Slug}}">
            {{if .CoverImage}}<img src="{{.CoverImage}}" alt="{{.Name}}" width="320">{{end}}
            <h3>{{.Name}}</h3>
            {{.Description}}
            <p>{{$.T.Portfolio.Client}}: {{.ClientName}} · {{$.T.Portfolio.Year}}: {{.Year}}</p>
            {{range .Tags}}<span class="tag">{{.}}</span>{{end}}
        </div>
        {{else}}
        <p>{{.T.Portfolio.Empty}}</p>
        {{end}}
    </section>

    <section id="about">
        <h2>{{.T.About.Title}}</h2>
        <p>{{.T.About.Story}}</p>
    </section>

    <section id="testimonials">
        <h2>{{.T.Testimonials.Title}}</h2>
        {{range .Testimonials}}
        <blockquote class="testimonial">
            <p>{{.Text}}</p>
            <footer>{{.Name}}, {{.Role}} · {{.Company}}</footer>
        </blockquote>
        {{end}}
    </section>

    <section id="contact">
        <h2>{{.T.Contact.Title}}</h2>
        <p>{{.T.Contact.Subtitle}}</p>
    </section>

    <footer>
        <p>{{.T.Footer.Tagline}}</p>
        <p>{{.T.Footer.Rights}}</p>
    </footer>
</body>
</html>`))

// homeHandler renders the localized site shell. The <html> lang and dir come
// from the document the language context maintains, unless ?lang= overrides
// them for this request.
func homeHandler(deps Deps, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}

		locale := deps.Language.Locale()
		lang, dir := deps.Document.Lang(), deps.Document.Dir()
		if override := r.URL.Query().Get("lang"); override != "" {
			locale = i18n.MatchAcceptLanguage(override)
			lang, dir = string(locale), locale.Dir()
		}

		data := homeData{
			Lang:    lang,
			Dir:     dir,
			T:       i18n.TreeFor(locale),
			Offline: deps.Projects.Mode() == projects.ModeLocalFallback,
		}

		for _, p := range deps.Projects.Published() {
			data.Projects = append(data.Projects, homeProject{
				Name:        p.DisplayName(locale),
				Description: renderMarkdown(p.DisplayDescription(locale)),
				ClientName:  p.ClientName,
				Year:        p.Year,
				Tags:        p.Tags,
				CoverImage:  p.CoverImage,
				Slug:        p.Slug,
			})
		}

		list, _ := deps.Testimonials.ListPublic(r.Context())
		for _, t := range testimonials.SortForDisplay(list) {
			data.Testimonials = append(data.Testimonials, t.Display(locale))
		}

		var buf bytes.Buffer
		if err := homeTemplate.Execute(&buf, data); err != nil {
			logger.Error("Failed to render home page", zap.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html")
		w.Header().Set("Content-Language", lang)
		if _, err := w.Write(buf.Bytes()); err != nil {
			logger.Debug("Failed to write home page", zap.Error(err))
		}
	}
}
