package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/Sudhanshu-Shirgaonkar/portfolio/internal/content"
	"github.com/Sudhanshu-Shirgaonkar/portfolio/internal/disclosure"
	"github.com/Sudhanshu-Shirgaonkar/portfolio/internal/motion"
)

const (
	// Layout units per terminal line and column, so motion offsets in page units map onto cells.
	unitsPerLine   = 20.0
	unitsPerColumn = 10.0

	// maxShift is the indent that absorbs a full entry offset in either direction.
	maxShift = int(motion.EntryOffset / unitsPerColumn)
)

// span is a line range relative to its section.
type span struct {
	start, height int
}

// visibleRatio is the fraction of [start, start+height) inside [top, top+viewHeight).
func visibleRatio(start, height, top, viewHeight int) float64 {
	if height <= 0 || viewHeight <= 0 {
		return 0
	}
	lo := max(start, top)
	hi := min(start+height, top+viewHeight)
	if hi <= lo {
		return 0
	}
	return float64(hi-lo) / float64(height)
}

// applyFrame indents lines by the frame's horizontal offset and fades them.
// A fully transparent frame keeps the line count but renders nothing.
func applyFrame(lines []string, f motion.Frame) []string {
	out := make([]string, len(lines))
	if f.Opacity <= 0 {
		return out
	}
	indent := strings.Repeat(" ", max(0, maxShift+int(math.Round(f.OffsetX/unitsPerColumn))))
	for i, l := range lines {
		if f.Opacity < 1 {
			l = faintStyle.Render(ansi.Strip(l))
		}
		out[i] = indent + l
	}
	return out
}

func splitLines(s string) []string {
	return strings.Split(s, "\n")
}

func renderCard(c content.Card, width int) []string {
	var b strings.Builder
	b.WriteString(cardTitleStyle.Render(c.Title))
	if c.Subtitle != "" {
		b.WriteString("\n" + subtleStyle.Render(c.Subtitle))
	}
	if c.Meta != "" {
		b.WriteString("\n" + metaStyle.Render(c.Meta))
	}
	if c.Body != "" {
		b.WriteString("\n" + c.Body)
	}
	for _, p := range c.Points {
		b.WriteString("\n• " + p)
	}
	if c.Link != "" {
		b.WriteString("\n↗ " + c.Link)
	}
	// lipgloss width covers padding but not the border
	return splitLines(cardStyle.Width(max(width-2, 10)).Render(b.String()))
}

func (m *Model) renderHero(width int) []string {
	p := m.portfolio.Profile
	lines := []string{
		greetingStyle.Render(p.Greeting),
		"",
	}
	lines = append(lines, splitLines(wrap(p.About, width))...)
	lines = append(lines, "")
	for _, l := range p.Links {
		lines = append(lines, fmt.Sprintf("%s  %s", l.Label, subtleStyle.Render(l.URL)))
	}
	return append(lines, "")
}

func (m *Model) renderContact() []string {
	p := m.portfolio.Profile
	lines := []string{headingStyle.Render("Contact"), ""}
	if mail := p.MailTo(); mail != "" {
		lines = append(lines, "Send Email  "+subtleStyle.Render(mail))
	}
	return append(lines, "")
}

func (m *Model) renderFooter() []string {
	p := m.portfolio.Profile
	return []string{subtleStyle.Render(fmt.Sprintf("© %d %s. All rights reserved.", p.CopyrightYear, p.Name))}
}

// renderList draws a list section. It returns the lines and the span of every rendered item.
func (m *Model) renderList(s *section, width int, at time.Time) ([]string, []span) {
	cards, initial, _ := m.portfolio.Cards(s.id)
	var r disclosure.Result[content.Card]
	if m.wide() {
		r = disclosure.Full(cards)
	} else {
		r = disclosure.View(cards, initial, s.state.Expanded)
	}

	lines := []string{headingStyle.Render(s.title), ""}
	spans := make([]span, 0, len(r.Items))
	for _, e := range r.Items {
		card := renderCard(e.Item, width)
		spans = append(spans, span{start: len(lines), height: len(card)})
		lines = append(lines, applyItemFrame(card, s.item(e.Index).Frame(at))...)
	}
	if r.ShowToggle {
		label := "[ " + r.Label() + " ]"
		style := toggleStyle
		if m.focusedID() == s.id {
			style = toggleFocus
		}
		lines = append(lines, style.Render(label))
	}
	return append(lines, ""), spans
}

// applyItemFrame fades an item in place; the rise offset is not drawn.
func applyItemFrame(lines []string, f motion.Frame) []string {
	if f.Opacity >= 1 {
		return lines
	}
	out := make([]string, len(lines))
	if f.Opacity <= 0 {
		return out
	}
	for i, l := range lines {
		out[i] = faintStyle.Render(ansi.Strip(l))
	}
	return out
}

func wrap(s string, width int) string {
	return lipgloss.NewStyle().Width(max(width, 10)).Render(s)
}
