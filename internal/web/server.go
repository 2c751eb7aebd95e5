// Package web serves the portfolio page and its htmx fragments.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Sudhanshu-Shirgaonkar/portfolio/internal/analytics"
	"github.com/Sudhanshu-Shirgaonkar/portfolio/internal/config"
	"github.com/Sudhanshu-Shirgaonkar/portfolio/internal/content"
	"github.com/Sudhanshu-Shirgaonkar/portfolio/internal/mail"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// ContentSource returns the portfolio to render for the current request.
type ContentSource interface {
	Current() *content.Portfolio
}

type Deps struct {
	Content ContentSource
	Mailer  mail.Sender
	Log     zerolog.Logger
	Admin   config.Admin
	// Analytics is optional; nil disables visit tracking and the admin pages.
	Analytics *analytics.Store
}

type server struct {
	Deps
	adminToken string
}

// NewRouter wires every route onto a new gin engine.
func NewRouter(d Deps) (*gin.Engine, error) {
	tmpl, err := template.New("").ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, err
	}

	s := &server{Deps: d}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(d.Log))
	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", http.FS(static))

	if d.Analytics != nil {
		r.Use(visitTracking(d.Analytics, d.Log))
	}

	r.GET("/", s.handleIndex)
	r.GET("/sections/:name", s.handleSection)
	r.GET("/menu", s.handleMenu)
	r.POST("/contact", s.handleContact)
	r.GET("/privacy", s.handlePrivacy)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if d.Analytics != nil {
		if err := s.setupAdminRoutes(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}
