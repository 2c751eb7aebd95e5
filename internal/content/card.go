package content

// Card is the display record every list item is reduced to.
type Card struct {
	Title    string
	Subtitle string
	Meta     string
	Body     string
	Points   []string
	Link     string
}

func (s Skill) Card() Card {
	return Card{Title: s.Category, Body: s.Skills}
}

func (p Project) Card() Card {
	c := Card{Title: p.Title, Body: p.Description}
	if p.HasLink() {
		c.Link = p.Link
	}
	return c
}

func (e Experience) Card() Card {
	return Card{Title: e.Title, Subtitle: e.Company, Points: e.Points}
}

func (e Education) Card() Card {
	return Card{Title: e.Title, Subtitle: e.School, Meta: e.Year, Body: e.Details}
}

func cards[T interface{ Card() Card }](l List[T]) ([]Card, int) {
	out := make([]Card, len(l.Items))
	for i, it := range l.Items {
		out[i] = it.Card()
	}
	return out, l.InitialVisible
}

// Cards returns the cards of a list section and its narrow-layout initial visible count.
func (p *Portfolio) Cards(name string) ([]Card, int, error) {
	var (
		out     []Card
		initial int
	)
	switch name {
	case SectionSkills:
		out, initial = cards(p.Skills)
	case SectionExperience:
		out, initial = cards(p.Experience)
	case SectionProjects:
		out, initial = cards(p.Projects)
	case SectionEducation:
		out, initial = cards(p.Education)
	default:
		_, _, err := p.Size(name)
		return nil, 0, err
	}
	return out, initial, nil
}
