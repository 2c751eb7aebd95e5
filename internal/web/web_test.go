package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sudhanshu-Shirgaonkar/portfolio/internal/content"
	"github.com/Sudhanshu-Shirgaonkar/portfolio/internal/mail"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type fakeMailer struct {
	err  error
	sent []mail.Message
}

func (f *fakeMailer) Send(_ context.Context, m mail.Message) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m)
	return nil
}

func newTestRouter(t *testing.T, mailer mail.Sender) *gin.Engine {
	t.Helper()
	p, err := content.Load()
	require.NoError(t, err)
	if mailer == nil {
		mailer = &fakeMailer{}
	}
	r, err := NewRouter(Deps{Content: content.NewLive(p), Mailer: mailer, Log: zerolog.Nop()})
	require.NoError(t, err)
	return r
}

func get(t *testing.T, r http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parse(t *testing.T, rec *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	return doc
}

func titles(sel *goquery.Selection) []string {
	var out []string
	sel.Find(".item h3").Each(func(_ int, s *goquery.Selection) {
		out = append(out, strings.TrimSpace(s.Text()))
	})
	return out
}

func TestIndexRendersEverySection(t *testing.T) {
	r := newTestRouter(t, nil)
	rec := get(t, r, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	doc := parse(t, rec)

	for _, id := range []string{"hero", "skills", "experience", "projects", "education", "contact"} {
		assert.Equal(t, 1, doc.Find("section#"+id).Length(), id)
	}
	assert.Equal(t, 5, doc.Find("header nav a[data-scroll-to]").Length())
	assert.Equal(t, "mailto:sudhanshu2684@gmail.com", doc.Find("#contact a[href^='mailto:']").AttrOr("href", ""))
	assert.Equal(t, "/static/images/developer-activity.png", doc.Find("#hero img").AttrOr("src", ""))

	body := doc.Find("body")
	assert.Equal(t, "300", body.AttrOr("data-scroll-threshold", ""))
	assert.Equal(t, "500", body.AttrOr("data-scroll-duration", ""))
	assert.Equal(t, "-70", body.AttrOr("data-nav-offset", ""))
	assert.Equal(t, "300", body.AttrOr("data-pointer-duration", ""))
	assert.Equal(t, "150", body.AttrOr("data-blob-half", ""))
	assert.Equal(t, "0.2", body.AttrOr("data-reveal-amount", ""))

	// the return-to-top control starts hidden
	_, hidden := doc.Find("#to-top").Attr("hidden")
	assert.True(t, hidden)
}

func TestIndexWideAndNarrowLayouts(t *testing.T) {
	r := newTestRouter(t, nil)
	doc := parse(t, get(t, r, "/"))

	wide := doc.Find("#projects-wide")
	assert.Len(t, titles(wide), 6)
	assert.Equal(t, 0, wide.Find("button").Length(), "wide layout never shows a toggle")

	narrow := doc.Find("#projects-narrow")
	assert.Equal(t, []string{"On-Demand Gig Platform", "Hospital Management System"}, titles(narrow))
	btn := narrow.Find("button")
	assert.Equal(t, "Show More", strings.TrimSpace(btn.Text()))
	assert.Equal(t, "/sections/projects?expanded=true", btn.AttrOr("hx-get", ""))
	assert.Equal(t, "#projects-narrow", btn.AttrOr("hx-target", ""))

	assert.Len(t, titles(doc.Find("#skills-narrow")), 4)
	assert.Len(t, titles(doc.Find("#experience-narrow")), 1)
	assert.Len(t, titles(doc.Find("#education-narrow")), 1)
}

func TestIndexRevealAttributes(t *testing.T) {
	r := newTestRouter(t, nil)
	doc := parse(t, get(t, r, "/"))

	skills := doc.Find("section#skills [data-reveal]").First()
	assert.Equal(t, "left", skills.AttrOr("data-reveal", ""))
	assert.Equal(t, "0.6", skills.AttrOr("data-reveal-duration", ""))
	assert.Equal(t, "0", skills.AttrOr("data-reveal-delay", ""))
	assert.Equal(t, "opacity:0;transform:translate(-100px,0px)", skills.AttrOr("style", ""))

	exp := doc.Find("section#experience [data-reveal]").First()
	assert.Equal(t, "right", exp.AttrOr("data-reveal", ""))
	assert.Equal(t, "opacity:0;transform:translate(100px,0px)", exp.AttrOr("style", ""))

	var delays []string
	doc.Find("#projects-wide .item").Each(func(_ int, s *goquery.Selection) {
		delays = append(delays, s.AttrOr("data-rise-delay", ""))
	})
	assert.Equal(t, []string{"0", "0.1", "0.2", "0.3", "0.4", "0.5"}, delays)
}

func TestPlaceholderProjectLinksHidden(t *testing.T) {
	r := newTestRouter(t, nil)
	doc := parse(t, get(t, r, "/"))
	assert.Equal(t, 0, doc.Find("#projects-wide a").Length())
}

func TestSectionToggleRoundTrip(t *testing.T) {
	r := newTestRouter(t, nil)

	rec := get(t, r, "/sections/projects?expanded=true")
	require.Equal(t, http.StatusOK, rec.Code)
	doc := parse(t, rec)
	assert.Len(t, titles(doc.Find("#projects-narrow")), 6)
	btn := doc.Find("button")
	assert.Equal(t, "Show Less", strings.TrimSpace(btn.Text()))
	assert.Equal(t, "/sections/projects?expanded=false", btn.AttrOr("hx-get", ""))

	doc = parse(t, get(t, r, btn.AttrOr("hx-get", "")))
	assert.Len(t, titles(doc.Find("#projects-narrow")), 2)
	assert.Equal(t, "Show More", strings.TrimSpace(doc.Find("button").Text()))

	// default is collapsed
	doc = parse(t, get(t, r, "/sections/experience"))
	assert.Len(t, titles(doc.Find("#experience-narrow")), 1)
}

func TestSectionErrors(t *testing.T) {
	r := newTestRouter(t, nil)
	assert.Equal(t, http.StatusNotFound, get(t, r, "/sections/contact").Code)
	assert.Equal(t, http.StatusNotFound, get(t, r, "/sections/hobbies").Code)
	assert.Equal(t, http.StatusBadRequest, get(t, r, "/sections/skills?expanded=maybe").Code)
}

func TestSectionNoToggleWhenNothingHidden(t *testing.T) {
	p, err := content.Parse([]byte(`
profile:
  name: T
projects:
  initial_visible: 3
  items:
    - title: A
    - title: B
`))
	require.NoError(t, err)
	r, err := NewRouter(Deps{Content: content.NewLive(p), Mailer: &fakeMailer{}, Log: zerolog.Nop()})
	require.NoError(t, err)

	for _, target := range []string{"/sections/projects", "/sections/projects?expanded=true"} {
		doc := parse(t, get(t, r, target))
		assert.Equal(t, []string{"A", "B"}, titles(doc.Selection))
		assert.Equal(t, 0, doc.Find("button").Length())
	}
}

func TestMenuFragment(t *testing.T) {
	r := newTestRouter(t, nil)

	closed := parse(t, get(t, r, "/menu"))
	assert.Equal(t, 0, closed.Find("nav a").Length())
	assert.Equal(t, "/menu?open=true", closed.Find("button").AttrOr("hx-get", ""))

	open := parse(t, get(t, r, "/menu?open=true"))
	assert.Equal(t, 5, open.Find("nav a").Length())
	assert.Equal(t, "/menu?open=false", open.Find("button").AttrOr("hx-get", ""))
	// choosing a link closes the menu
	assert.Equal(t, "/menu?open=false", open.Find("nav a").First().AttrOr("hx-get", ""))

	assert.Equal(t, http.StatusBadRequest, get(t, r, "/menu?open=2x").Code)
}

func postContact(t *testing.T, r http.Handler, form url.Values) *goquery.Document {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	return parse(t, rec)
}

func TestContactForm(t *testing.T) {
	mailer := &fakeMailer{}
	r := newTestRouter(t, mailer)

	doc := postContact(t, r, url.Values{"fullName": {"Ada"}, "email": {"ada@example.com"}, "message": {"Hi"}})
	assert.Equal(t, 1, doc.Find(".contact-success").Length())
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "Ada", mailer.sent[0].Name)

	doc = postContact(t, r, url.Values{"fullName": {"Ada"}, "email": {"nope"}, "message": {"Hi"}})
	assert.Contains(t, doc.Find(".contact-error").Text(), "valid email")

	failing := newTestRouter(t, &fakeMailer{err: mail.ErrNotConfigured})
	doc = postContact(t, failing, url.Values{"fullName": {"Ada"}, "email": {"ada@example.com"}, "message": {"Hi"}})
	assert.Contains(t, doc.Find(".contact-error").Text(), "try again later")
}

func TestStaticAssetsAndPrivacy(t *testing.T) {
	r := newTestRouter(t, nil)

	rec := get(t, r, "/static/js/portfolio.js")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "IntersectionObserver")

	// the illustration is optional; the page still renders without it
	assert.Equal(t, http.StatusNotFound, get(t, r, "/static/images/developer-activity.png").Code)

	doc := parse(t, get(t, r, "/privacy"))
	assert.Equal(t, 1, doc.Find("#tracking-off").Length())

	assert.Equal(t, http.StatusOK, get(t, r, "/healthz").Code)
	assert.Equal(t, http.StatusNotFound, get(t, r, "/admin/login").Code, "admin pages need analytics")
}
