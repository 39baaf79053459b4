package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"agencysite/internal/api"
	"agencysite/internal/auth"
	"agencysite/internal/contact"
	"agencysite/internal/core"
	"agencysite/internal/i18n"
	"agencysite/internal/projects"
	"agencysite/internal/testimonials"
)

type apiHandler struct {
	deps   Deps
	logger *zap.Logger
}

func newAPIRouter(config *core.ServerConfig, deps Deps, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestIDMiddleware())
	r.Use(loggingMiddleware(logger))
	r.Use(metricsMiddleware(deps.Metrics))
	r.Use(corsMiddleware(config.AllowOrigins))
	r.Use(languageMiddleware(deps.Language))

	h := &apiHandler{deps: deps, logger: logger}
	h.Register(r.Group("/api"))

	return r
}

// Register attaches every API route to rg.
func (h *apiHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/status", h.status)
	rg.GET("/locale", h.getLocale)
	rg.PUT("/locale", h.setLocale)
	rg.GET("/translations", h.translations)

	rg.GET("/projects", h.listProjects)
	rg.GET("/projects/:slug", h.getProject)
	rg.GET("/testimonials", h.listTestimonials)
	rg.POST("/contact", h.submitContact)

	rg.POST("/admin/login", h.login)

	admin := rg.Group("/admin")
	admin.Use(requireAdmin(h.deps.Auth))
	admin.POST("/logout", h.logout)
	admin.GET("/me", h.me)
	admin.GET("/projects", h.adminListProjects)
	admin.POST("/projects", h.createProject)
	admin.PUT("/projects/:id", h.updateProject)
	admin.DELETE("/projects/:id", h.deleteProject)
	admin.GET("/testimonials", h.adminListTestimonials)
	admin.POST("/testimonials", h.createTestimonial)
	admin.PUT("/testimonials/:id", h.updateTestimonial)
	admin.DELETE("/testimonials/:id", h.deleteTestimonial)
}

func (h *apiHandler) localizer(c *gin.Context) *i18n.Localizer {
	return i18n.NewLocalizer(requestLocale(c))
}

func (h *apiHandler) status(c *gin.Context) {
	resp := gin.H{
		"ok":       true,
		"mode":     h.deps.Projects.Mode().String(),
		"projects": len(h.deps.Projects.List()),
		"locale":   h.deps.Language.Locale(),
		"admin":    h.deps.Auth.IsAuthenticated(c.Request.Context()),
	}
	if h.deps.Floodgate != nil {
		resp["contact"] = h.deps.Floodgate.GetStats()
	}
	c.JSON(http.StatusOK, resp)
}

func (h *apiHandler) getLocale(c *gin.Context) {
	locale := h.deps.Language.Locale()
	c.JSON(http.StatusOK, gin.H{
		"ok":        true,
		"locale":    locale,
		"dir":       locale.Dir(),
		"isRTL":     locale.IsRTL(),
		"supported": i18n.SupportedLocales(),
	})
}

type setLocaleReq struct {
	Locale string `json:"locale"`
}

func (h *apiHandler) setLocale(c *gin.Context) {
	var req setLocaleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "error.invalid_body")
		return
	}

	locale, err := i18n.ParseLocale(req.Locale)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "error.unsupported_locale", req.Locale, "en, ar")
		return
	}

	if err := h.deps.Language.SetLocale(c.Request.Context(), locale); err != nil {
		// nothing changed; the locale only switches once it is persisted
		h.logger.Error("Failed to persist locale", zap.Error(err))
		abortWithError(c, http.StatusInternalServerError, "error.generic")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "locale": locale, "dir": locale.Dir()})
}

func (h *apiHandler) translations(c *gin.Context) {
	locale := requestLocale(c)
	c.JSON(http.StatusOK, gin.H{"ok": true, "locale": locale, "translations": i18n.TreeFor(locale)})
}

// projectView adds the locale-resolved name and description to a project.
type projectView struct {
	projects.Project
	DisplayName        string `json:"displayName"`
	DisplayDescription string `json:"displayDescription"`
}

func viewProject(p projects.Project, locale i18n.Locale) projectView {
	return projectView{
		Project:            p,
		DisplayName:        p.DisplayName(locale),
		DisplayDescription: p.DisplayDescription(locale),
	}
}

func (h *apiHandler) listProjects(c *gin.Context) {
	locale := requestLocale(c)
	filter := projects.ProjectType(c.Query("type"))

	views := make([]projectView, 0)
	for _, p := range h.deps.Projects.Published() {
		if filter != "" && p.ProjectType != filter {
			continue
		}
		views = append(views, viewProject(p, locale))
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": views})
}

func (h *apiHandler) getProject(c *gin.Context) {
	slug := c.Param("slug")

	p, ok := h.deps.Projects.BySlug(slug)
	if !ok || p.Status != projects.StatusPublished {
		abortWithError(c, http.StatusNotFound, "error.project_not_found", slug)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "project": viewProject(p, requestLocale(c))})
}

func (h *apiHandler) listTestimonials(c *gin.Context) {
	locale := requestLocale(c)
	list, source := h.deps.Testimonials.ListPublic(c.Request.Context())

	list = testimonials.SortForDisplay(list)
	if c.Query("featured") == "true" {
		list = testimonials.Featured(list)
	}

	views := make([]testimonials.View, 0, len(list))
	for _, t := range list {
		views = append(views, t.Display(locale))
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "source": source, "testimonials": views})
}

func (h *apiHandler) submitContact(c *gin.Context) {
	var msg contact.Message
	if err := c.ShouldBindJSON(&msg); err != nil {
		abortWithError(c, http.StatusBadRequest, "error.invalid_body")
		return
	}

	sender := c.ClientIP()
	err := h.deps.Contact.Submit(c.Request.Context(), msg, sender)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"ok": true, "message": h.localizer(c).T("success.contact_sent")})
	case errors.Is(err, contact.ErrInvalidMessage):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
	case errors.Is(err, contact.ErrThrottled):
		if h.deps.Metrics != nil {
			h.deps.Metrics.RecordContactThrottled()
		}
		c.Header("Retry-After", strconv.Itoa(h.deps.Contact.RetryAfterSeconds(sender)))
		abortWithError(c, http.StatusTooManyRequests, "error.throttled")
	default:
		h.logger.Warn("Contact submission failed", zap.Error(err))
		abortWithError(c, http.StatusBadGateway, "error.generic")
	}
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *apiHandler) login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Email) == "" {
		abortWithError(c, http.StatusBadRequest, "error.invalid_body")
		return
	}

	session, err := h.deps.Auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			abortWithError(c, http.StatusUnauthorized, "error.invalid_credentials")
			return
		}
		h.logger.Error("Login failed", zap.Error(err))
		abortWithError(c, http.StatusBadGateway, "error.generic")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"session": session,
		"message": h.localizer(c).T("success.logged_in", session.User.Email),
	})
}

func (h *apiHandler) logout(c *gin.Context) {
	if err := h.deps.Auth.Logout(c.Request.Context()); err != nil {
		h.logger.Error("Logout failed", zap.Error(err))
		abortWithError(c, http.StatusInternalServerError, "error.generic")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "message": h.localizer(c).T("success.logged_out")})
}

func (h *apiHandler) me(c *gin.Context) {
	user, err := h.deps.Auth.Me(c.Request.Context())
	if err != nil {
		if errors.Is(err, auth.ErrNotAuthenticated) {
			abortWithError(c, http.StatusUnauthorized, "error.unauthorized")
			return
		}
		abortWithError(c, http.StatusBadGateway, "error.generic")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "user": user})
}

func (h *apiHandler) adminListProjects(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ok":       true,
		"mode":     h.deps.Projects.Mode().String(),
		"projects": h.deps.Projects.List(),
	})
}

func (h *apiHandler) createProject(c *gin.Context) {
	var draft projects.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		abortWithError(c, http.StatusBadRequest, "error.invalid_body")
		return
	}

	p, err := h.deps.Projects.Add(c.Request.Context(), draft)
	if err != nil {
		h.projectError(c, err, "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"ok":      true,
		"project": p,
		"message": h.localizer(c).T("success.project_created", p.Name),
	})
}

func (h *apiHandler) updateProject(c *gin.Context) {
	id := c.Param("id")

	var patch projects.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		abortWithError(c, http.StatusBadRequest, "error.invalid_body")
		return
	}

	p, err := h.deps.Projects.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.projectError(c, err, id)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"project": p,
		"message": h.localizer(c).T("success.project_updated", p.Name),
	})
}

func (h *apiHandler) deleteProject(c *gin.Context) {
	if err := h.deps.Projects.Remove(c.Request.Context(), c.Param("id")); err != nil {
		h.projectError(c, err, c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "message": h.localizer(c).T("success.project_deleted")})
}

func (h *apiHandler) projectError(c *gin.Context, err error, id string) {
	switch {
	case errors.Is(err, projects.ErrNotFound):
		abortWithError(c, http.StatusNotFound, "error.project_not_found", id)
	case errors.Is(err, projects.ErrInvalidDraft):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
	default:
		h.logger.Error("Project operation failed", zap.String("id", id), zap.Error(err))
		abortWithError(c, http.StatusInternalServerError, "error.generic")
	}
}

func (h *apiHandler) adminListTestimonials(c *gin.Context) {
	list, source := h.deps.Testimonials.ListAdmin(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"ok": true, "source": source, "testimonials": list})
}

func (h *apiHandler) createTestimonial(c *gin.Context) {
	var in testimonials.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		abortWithError(c, http.StatusBadRequest, "error.invalid_body")
		return
	}

	t, err := h.deps.Testimonials.Create(c.Request.Context(), in)
	if err != nil {
		h.testimonialError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "testimonial": t, "message": h.localizer(c).T("success.testimonial_saved")})
}

func (h *apiHandler) updateTestimonial(c *gin.Context) {
	id, ok := testimonialID(c)
	if !ok {
		return
	}

	var in testimonials.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		abortWithError(c, http.StatusBadRequest, "error.invalid_body")
		return
	}

	t, err := h.deps.Testimonials.Update(c.Request.Context(), id, in)
	if err != nil {
		h.testimonialError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "testimonial": t, "message": h.localizer(c).T("success.testimonial_saved")})
}

func (h *apiHandler) deleteTestimonial(c *gin.Context) {
	id, ok := testimonialID(c)
	if !ok {
		return
	}

	if err := h.deps.Testimonials.Delete(c.Request.Context(), id); err != nil {
		h.testimonialError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "message": h.localizer(c).T("success.testimonial_deleted")})
}

func testimonialID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		abortWithError(c, http.StatusBadRequest, "error.invalid_body")
		return 0, false
	}
	return id, true
}

func (h *apiHandler) testimonialError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, testimonials.ErrInvalidRating):
		abortWithError(c, http.StatusBadRequest, "error.invalid_rating")
	case errors.Is(err, testimonials.ErrMissingField):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
	case api.IsNotFound(err):
		abortWithError(c, http.StatusNotFound, "error.not_found")
	default:
		h.logger.Warn("Testimonial operation failed", zap.Error(err))
		abortWithError(c, http.StatusBadGateway, "error.generic")
	}
}
