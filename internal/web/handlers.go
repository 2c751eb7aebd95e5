package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Sudhanshu-Shirgaonkar/portfolio/internal/content"
	"github.com/Sudhanshu-Shirgaonkar/portfolio/internal/mail"
)

func (s *server) handleIndex(c *gin.Context) {
	page, err := buildPage(s.Content.Current())
	if err != nil {
		s.Log.Error().Err(err).Msg("building page")
		c.String(http.StatusInternalServerError, "portfolio unavailable")
		return
	}
	c.HTML(http.StatusOK, "index.html", page)
}

// queryBool parses an optional boolean query flag; absent means false.
func queryBool(c *gin.Context, key string) (bool, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return false, nil
	}
	return strconv.ParseBool(raw)
}

// handleSection renders the narrow-layout list of one section with the requested disclosure state.
func (s *server) handleSection(c *gin.Context) {
	expanded, err := queryBool(c, "expanded")
	if err != nil {
		c.String(http.StatusBadRequest, "expanded must be a boolean")
		return
	}

	list, err := buildList(s.Content.Current(), c.Param("name"), false, expanded)
	if errors.Is(err, content.ErrUnknownSection) {
		c.String(http.StatusNotFound, "unknown section")
		return
	}
	if err != nil {
		s.Log.Error().Err(err).Msg("building section")
		c.String(http.StatusInternalServerError, "section unavailable")
		return
	}
	c.HTML(http.StatusOK, "section-narrow", list)
}

func (s *server) handleMenu(c *gin.Context) {
	open, err := queryBool(c, "open")
	if err != nil {
		c.String(http.StatusBadRequest, "open must be a boolean")
		return
	}
	c.HTML(http.StatusOK, "mobile-menu", menuView(open))
}

func (s *server) handleContact(c *gin.Context) {
	msg := mail.Message{
		Name:  c.PostForm("fullName"),
		Email: c.PostForm("email"),
		Body:  c.PostForm("message"),
	}

	err := s.Mailer.Send(c.Request.Context(), msg)
	switch {
	case err == nil:
		c.HTML(http.StatusOK, "contact-success", gin.H{
			"success": "Thank you for your message! I'll get back to you soon.",
		})
	case errors.Is(err, mail.ErrInvalidMessage):
		c.HTML(http.StatusOK, "contact-error", gin.H{
			"error": "Please fill in your name, a valid email address and a message.",
		})
	default:
		s.Log.Error().Err(err).Msg("contact form")
		c.HTML(http.StatusOK, "contact-error", gin.H{
			"error": "Sorry, there was an error sending your message. Please try again later.",
		})
	}
}

func (s *server) handlePrivacy(c *gin.Context) {
	c.HTML(http.StatusOK, "privacy.html", gin.H{
		"title":    "Privacy Policy",
		"tracking": s.Analytics != nil,
		"name":     s.Content.Current().Profile.Name,
	})
}
