package web

import (
	"html/template"
	"strconv"
	"time"

	"github.com/Sudhanshu-Shirgaonkar/portfolio/internal/content"
	"github.com/Sudhanshu-Shirgaonkar/portfolio/internal/disclosure"
	"github.com/Sudhanshu-Shirgaonkar/portfolio/internal/motion"
	"github.com/Sudhanshu-Shirgaonkar/portfolio/internal/pointer"
	"github.com/Sudhanshu-Shirgaonkar/portfolio/internal/scroll"
)

var sectionTitles = map[string]string{
	content.SectionSkills:     "Skills & Technologies",
	content.SectionExperience: "Experience",
	content.SectionProjects:   "Projects",
	content.SectionEducation:  "Education",
	content.SectionContact:    "Contact",
}

type ItemView struct {
	content.Card
	Index int
	Delay string
	Style template.CSS
}

// ListView is one rendering of a list section, either the wide grid or the narrow disclosure.
type ListView struct {
	Section      string
	Items        []ItemView
	ShowToggle   bool
	Label        string
	NextExpanded bool
}

// TargetID is the DOM id htmx swaps when the toggle is activated.
func (l ListView) TargetID() string {
	return l.Section + "-narrow"
}

type RevealView struct {
	Direction string
	Duration  string
	Delay     string
	Style     template.CSS
}

type SectionView struct {
	ID     string
	Title  string
	Reveal RevealView
	Wide   ListView
	Narrow ListView
}

type NavItem struct {
	ID    string
	Label string
}

type MenuView struct {
	Open  bool
	Items []NavItem
}

// MotionView carries the timing constants the page script reads from <body>.
type MotionView struct {
	ScrollThreshold string
	ScrollDuration  string
	NavOffset       string
	PointerDuration string
	BlobHalfSize    string
	RevealAmount    string
}

type PageView struct {
	Profile  content.Profile
	Nav      []NavItem
	Menu     MenuView
	HeroText RevealView
	HeroArt  RevealView
	Sections []SectionView
	Contact  RevealView
	Motion   MotionView
}

func seconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64)
}

func millis(d time.Duration) string {
	return strconv.FormatInt(d.Milliseconds(), 10)
}

func number(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func revealView(r *motion.Reveal, d motion.Direction) RevealView {
	tr := r.Transition()
	return RevealView{
		Direction: d.String(),
		Duration:  seconds(tr.Duration),
		Delay:     seconds(tr.Delay),
		Style:     template.CSS(r.Hidden().CSS()),
	}
}

func navItems() []NavItem {
	items := make([]NavItem, 0, len(content.Sections))
	for _, s := range content.Sections {
		items = append(items, NavItem{ID: s, Label: s})
	}
	return items
}

func menuView(open bool) MenuView {
	return MenuView{Open: open, Items: navItems()}
}

func listView(section string, r disclosure.Result[content.Card]) ListView {
	items := make([]ItemView, 0, len(r.Items))
	for _, e := range r.Items {
		rise := motion.Item(e.Index)
		items = append(items, ItemView{
			Card:  e.Item,
			Index: e.Index,
			Delay: seconds(e.Delay),
			Style: template.CSS(rise.Hidden().CSS()),
		})
	}
	return ListView{
		Section:      section,
		Items:        items,
		ShowToggle:   r.ShowToggle,
		Label:        r.Label(),
		NextExpanded: !r.Expanded,
	}
}

// buildList renders a list section for the wide (full) or narrow (disclosure) layout.
func buildList(p *content.Portfolio, section string, wide, expanded bool) (ListView, error) {
	cards, initial, err := p.Cards(section)
	if err != nil {
		return ListView{}, err
	}
	if wide {
		return listView(section, disclosure.Full(cards)), nil
	}
	return listView(section, disclosure.View(cards, initial, expanded)), nil
}

func buildPage(p *content.Portfolio) (PageView, error) {
	page := PageView{
		Profile:  p.Profile,
		Nav:      navItems(),
		Menu:     menuView(false),
		HeroText: revealView(motion.Section(motion.Left, 0), motion.Left),
		HeroArt:  revealView(motion.Section(motion.Right, 0), motion.Right),
		Motion: MotionView{
			ScrollThreshold: number(scroll.Threshold),
			ScrollDuration:  millis(scroll.Duration),
			NavOffset:       number(scroll.NavOffset),
			PointerDuration: millis(pointer.Duration),
			BlobHalfSize:    number(pointer.BlobHalfSize),
			RevealAmount:    number(motion.Amount),
		},
	}

	for i, name := range content.Sections {
		dir := motion.Alternate(i)
		if name == content.SectionContact {
			page.Contact = revealView(motion.Section(dir, 0), dir)
			continue
		}
		wide, err := buildList(p, name, true, false)
		if err != nil {
			return PageView{}, err
		}
		narrow, err := buildList(p, name, false, false)
		if err != nil {
			return PageView{}, err
		}
		page.Sections = append(page.Sections, SectionView{
			ID:     name,
			Title:  sectionTitles[name],
			Reveal: revealView(motion.Section(dir, 0), dir),
			Wide:   wide,
			Narrow: narrow,
		})
	}
	return page, nil
}
