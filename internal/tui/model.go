// Package tui renders the portfolio in a terminal with the same disclosure, reveal,
// scroll and pointer behaviour as the web page.
package tui

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Sudhanshu-Shirgaonkar/portfolio/internal/content"
	"github.com/Sudhanshu-Shirgaonkar/portfolio/internal/disclosure"
	"github.com/Sudhanshu-Shirgaonkar/portfolio/internal/motion"
	"github.com/Sudhanshu-Shirgaonkar/portfolio/internal/pointer"
	"github.com/Sudhanshu-Shirgaonkar/portfolio/internal/scroll"
	"github.com/Sudhanshu-Shirgaonkar/portfolio/internal/signal"
)

const (
	defaultWideWidth = 100
	headerHeight     = 2
	footerHeight     = 2
	frameInterval    = 16 * time.Millisecond
	wheelStep        = 3
)

const heroID = "hero"

type Options struct {
	// Now is the clock used for animations. Defaults to time.Now.
	Now func() time.Time
	// WideWidth is the terminal width from which every list is shown in full.
	WideWidth int
}

// section is one stacked region of the page and its fire-once entry animation.
type section struct {
	id     string
	title  string
	list   bool
	reveal *motion.Reveal
	state  disclosure.State
	items  map[int]*motion.Reveal

	start  int
	height int
	spans  []span
}

func (s *section) item(i int) *motion.Reveal {
	r, ok := s.items[i]
	if !ok {
		r = motion.Item(i)
		s.items[i] = r
	}
	return r
}

type frameMsg struct{}

// Model implements tea.Model for the terminal portfolio.
type Model struct {
	portfolio *content.Portfolio
	now       func() time.Time
	wideWidth int

	vp       viewport.Model
	width    int
	height   int
	ready    bool
	sections []*section
	doc      []string
	focus    int
	menuOpen bool

	scrollSrc  signal.Source[float64]
	pointerSrc signal.Source[pointer.Point]
	watcher    scroll.Watcher
	blob       *pointer.Tracker
	detach     []func()

	smooth  *scroll.Smooth
	ticking bool
}

// NewModel builds the model and attaches its scroll and pointer listeners.
func NewModel(p *content.Portfolio, opts Options) *Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.WideWidth <= 0 {
		opts.WideWidth = defaultWideWidth
	}

	m := &Model{
		portfolio: p,
		now:       opts.Now,
		wideWidth: opts.WideWidth,
		vp:        viewport.New(0, 0),
		focus:     -1,
		blob:      pointer.NewTracker(pointer.Point{}),
	}
	m.vp.MouseWheelEnabled = false

	m.sections = append(m.sections, &section{id: heroID, reveal: motion.Section(motion.Left, 0)})
	for i, name := range content.Sections {
		s := &section{
			id:     name,
			title:  sectionTitle(name),
			list:   content.IsList(name),
			reveal: motion.Section(motion.Alternate(i), 0),
			items:  map[int]*motion.Reveal{},
		}
		m.sections = append(m.sections, s)
	}

	m.detach = append(m.detach,
		m.watcher.Attach(&m.scrollSrc),
		m.blob.Attach(&m.pointerSrc, m.now),
	)
	return m
}

func sectionTitle(name string) string {
	switch name {
	case content.SectionSkills:
		return "Skills & Technologies"
	case content.SectionContact:
		return "Contact"
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// Close detaches every listener. It is safe to call more than once.
func (m *Model) Close() {
	for _, stop := range m.detach {
		stop()
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) wide() bool {
	return m.width >= m.wideWidth
}

func (m *Model) listSections() []*section {
	var out []*section
	for _, s := range m.sections {
		if s.list {
			out = append(out, s)
		}
	}
	return out
}

func (m *Model) focusedID() string {
	lists := m.listSections()
	if m.focus < 0 || m.focus >= len(lists) {
		return ""
	}
	return lists[m.focus].id
}

func (m *Model) sectionByID(id string) *section {
	for _, s := range m.sections {
		if s.id == id {
			return s
		}
	}
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, m.refresh()

	case frameMsg:
		m.ticking = false
		if m.smooth != nil {
			at := m.now()
			m.vp.SetYOffset(int(math.Round(m.smooth.Offset(at) / unitsPerLine)))
			if m.smooth.Done(at) {
				m.smooth = nil
			}
			m.emitScroll()
		}
		return m, m.refresh()

	case tea.MouseMsg:
		switch {
		case msg.Action == tea.MouseActionMotion:
			m.pointerSrc.Emit(pointer.Point{X: float64(msg.X), Y: float64(msg.Y)})
		case msg.Button == tea.MouseButtonWheelDown:
			m.scrollBy(wheelStep)
		case msg.Button == tea.MouseButtonWheelUp:
			m.scrollBy(-wheelStep)
		}
		return m, m.refresh()

	case tea.KeyMsg:
		return m.handleKey(msg.String())
	}
	return m, nil
}

func (m *Model) handleKey(key string) (tea.Model, tea.Cmd) {
	if m.menuOpen {
		switch key {
		case "m", "esc":
			m.menuOpen = false
			return m, nil
		case "q", "ctrl+c":
			return m.quit()
		}
		if n, err := strconv.Atoi(key); err == nil {
			m.menuOpen = false
			m.jumpTo(n)
			return m, m.refresh()
		}
		return m, nil
	}

	switch key {
	case "q", "ctrl+c":
		return m.quit()
	case "j", "down":
		m.scrollBy(1)
	case "k", "up":
		m.scrollBy(-1)
	case "ctrl+d":
		m.scrollBy(max(1, m.vp.Height/2))
	case "ctrl+u":
		m.scrollBy(-max(1, m.vp.Height/2))
	case "pgdown", "f":
		m.scrollBy(max(1, m.vp.Height))
	case "pgup", "b":
		m.scrollBy(-max(1, m.vp.Height))
	case "G", "end":
		m.scrollBy(m.vp.TotalLineCount())
	case "tab":
		m.moveFocus(1)
	case "shift+tab":
		m.moveFocus(-1)
	case " ", "space", "enter":
		m.toggleFocused()
	case "m":
		m.menuOpen = true
		return m, nil
	case "t", "home":
		if m.watcher.Past() {
			m.smooth = scroll.To(m.offsetUnits(), 0, m.now())
		}
	default:
		if n, err := strconv.Atoi(key); err == nil {
			m.jumpTo(n)
		}
	}
	return m, m.refresh()
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.Close()
	return m, tea.Quit
}

func (m *Model) moveFocus(delta int) {
	n := len(m.listSections())
	if n == 0 {
		return
	}
	if m.focus < 0 {
		if delta > 0 {
			m.focus = 0
		} else {
			m.focus = n - 1
		}
		return
	}
	m.focus = (m.focus + delta + n) % n
}

// toggleFocused flips the focused section. A collapse unmounts the hidden items,
// so their entry animation arms again for the next expansion.
func (m *Model) toggleFocused() {
	if m.wide() {
		return
	}
	s := m.sectionByID(m.focusedID())
	if s == nil {
		return
	}
	s.state.Toggle()
	if !s.state.Expanded {
		_, initial, _ := m.portfolio.Cards(s.id)
		for i := range s.items {
			if i >= initial {
				delete(s.items, i)
			}
		}
	}
}

// jumpTo smooth-scrolls to the n-th navigation section (1-based).
func (m *Model) jumpTo(n int) {
	if n < 1 || n > len(content.Sections) {
		return
	}
	s := m.sectionByID(content.Sections[n-1])
	target := scroll.SectionTarget(float64(s.start) * unitsPerLine)
	m.smooth = scroll.To(m.offsetUnits(), target, m.now())
}

func (m *Model) offsetUnits() float64 {
	return float64(m.vp.YOffset) * unitsPerLine
}

func (m *Model) scrollBy(lines int) {
	m.smooth = nil
	if lines > 0 {
		m.vp.LineDown(lines)
	} else {
		m.vp.LineUp(-lines)
	}
	m.emitScroll()
}

func (m *Model) emitScroll() {
	m.scrollSrc.Emit(m.offsetUnits())
}

func (m *Model) resize(width, height int) {
	if width <= 0 || height <= headerHeight+footerHeight {
		return
	}
	m.width = width
	m.height = height
	m.vp.Width = width
	m.vp.Height = height - headerHeight - footerHeight
	m.ready = true
}

func (m *Model) contentWidth() int {
	return max(m.width-2*maxShift, 20)
}

// refresh lays out the document, feeds visibility to every reveal and schedules
// the next frame while anything is still moving.
func (m *Model) refresh() tea.Cmd {
	if !m.ready {
		return nil
	}
	at := m.now()
	m.compose(at)
	if m.observe(at) {
		m.compose(at)
	}
	if !m.animating(at) || m.ticking {
		return nil
	}
	m.ticking = true
	return tea.Tick(frameInterval, func(time.Time) tea.Msg { return frameMsg{} })
}

func (m *Model) compose(at time.Time) {
	width := m.contentWidth()
	var doc []string
	for _, s := range m.sections {
		var lines []string
		switch {
		case s.id == heroID:
			lines = m.renderHero(width)
		case s.id == content.SectionContact:
			lines = m.renderContact()
		default:
			lines, s.spans = m.renderList(s, width, at)
		}
		s.start = len(doc)
		s.height = len(lines)
		doc = append(doc, applyFrame(lines, s.reveal.Frame(at))...)
	}
	doc = append(doc, m.renderFooter()...)

	m.doc = doc
	offset := m.vp.YOffset
	m.vp.SetContent(strings.Join(doc, "\n"))
	m.vp.SetYOffset(offset)
	// a shorter document or taller window clamps the offset
	if m.vp.YOffset != offset {
		m.emitScroll()
	}
}

// observe reports visibility ratios to every section and rendered item. It returns
// true when any animation fired.
func (m *Model) observe(at time.Time) bool {
	top, h := m.vp.YOffset, m.vp.Height
	fired := false
	for _, s := range m.sections {
		if s.reveal.Observe(visibleRatio(s.start, s.height, top, h), at) {
			fired = true
		}
		if s.reveal.Phase() != motion.Fired {
			continue
		}
		for i, sp := range s.spans {
			if s.item(i).Observe(visibleRatio(s.start+sp.start, sp.height, top, h), at) {
				fired = true
			}
		}
	}
	return fired
}

func (m *Model) animating(at time.Time) bool {
	if m.smooth != nil || m.blob.Animating(at) {
		return true
	}
	for _, s := range m.sections {
		if s.reveal.Animating(at) {
			return true
		}
		for _, r := range s.items {
			if r.Animating(at) {
				return true
			}
		}
	}
	return false
}

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready {
		return ""
	}
	if m.menuOpen {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.menuView())
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(),
		m.vp.View(),
		m.blobView(),
		m.statusView(),
	)
}

func (m *Model) headerView() string {
	name := nameStyle.Render(m.portfolio.Profile.Name)
	var nav []string
	for i, s := range content.Sections {
		nav = append(nav, strconv.Itoa(i+1)+" "+s)
	}
	hint := "m menu"
	if m.wide() {
		hint = strings.Join(nav, "  ")
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top, name, "   ", subtleStyle.Render(hint))
	return line + "\n" + strings.Repeat("─", m.width)
}

func (m *Model) menuView() string {
	lines := []string{headingStyle.Render("Menu"), ""}
	for i, s := range content.Sections {
		lines = append(lines, strconv.Itoa(i+1)+"  "+s)
	}
	lines = append(lines, "", subtleStyle.Render("m / esc close"))
	return menuStyle.Render(strings.Join(lines, "\n"))
}

func (m *Model) blobView() string {
	p := m.blob.Position(m.now())
	col := min(max(int(math.Round(p.X)), 0), max(m.width-1, 0))
	return strings.Repeat(" ", col) + blobStyle.Render("●")
}

func (m *Model) statusView() string {
	help := "j/k scroll • tab focus • space show more • 1-5 jump • m menu • q quit"
	left := statusStyle.Render(help)
	if !m.watcher.Past() {
		return left
	}
	top := topStyle.Render("↑ top (t)")
	gap := max(1, m.width-lipgloss.Width(left)-lipgloss.Width(top))
	return left + strings.Repeat(" ", gap) + top
}
