// Package content holds the portfolio records rendered by the web and terminal surfaces.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed portfolio.yaml
var embedded []byte

// ErrUnknownSection is returned when a section name does not match a list section.
var ErrUnknownSection = errors.New("unknown section")

// Section names in navigation order.
const (
	SectionSkills     = "skills"
	SectionExperience = "experience"
	SectionProjects   = "projects"
	SectionEducation  = "education"
	SectionContact    = "contact"
)

// Sections is the navigation order of the page.
var Sections = []string{SectionSkills, SectionExperience, SectionProjects, SectionEducation, SectionContact}

type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

type Profile struct {
	Name          string `yaml:"name"`
	Greeting      string `yaml:"greeting"`
	About         string `yaml:"about"`
	Image         string `yaml:"image"`
	ImageAlt      string `yaml:"image_alt"`
	Email         string `yaml:"email"`
	Links         []Link `yaml:"links"`
	CopyrightYear int    `yaml:"copyright_year"`
}

// MailTo returns the email-composition link for the contact section.
func (p Profile) MailTo() string {
	if p.Email == "" {
		return ""
	}
	return "mailto:" + p.Email
}

type Skill struct {
	Category string `yaml:"category"`
	Skills   string `yaml:"skills"`
}

type Project struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Link        string `yaml:"link"`
}

// HasLink reports whether the project points somewhere real. Placeholder "#" links are hidden.
func (p Project) HasLink() bool {
	return p.Link != "" && p.Link != "#"
}

type Experience struct {
	Title   string   `yaml:"title"`
	Company string   `yaml:"company"`
	Points  []string `yaml:"points"`
}

type Education struct {
	Title   string `yaml:"title"`
	School  string `yaml:"school"`
	Details string `yaml:"details"`
	Year    string `yaml:"year"`
}

// List is an ordered section of records plus the number shown before "Show More" on narrow layouts.
type List[T any] struct {
	InitialVisible int `yaml:"initial_visible"`
	Items          []T `yaml:"items"`
}

type Portfolio struct {
	Profile    Profile          `yaml:"profile"`
	Skills     List[Skill]      `yaml:"skills"`
	Experience List[Experience] `yaml:"experience"`
	Projects   List[Project]    `yaml:"projects"`
	Education  List[Education]  `yaml:"education"`
}

// Load parses the portfolio shipped with the binary.
func Load() (*Portfolio, error) {
	return Parse(embedded)
}

// LoadFile parses a portfolio from disk, used to override the embedded content.
func LoadFile(path string) (*Portfolio, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML portfolio content.
func Parse(data []byte) (*Portfolio, error) {
	var p Portfolio
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse content: %w", err)
	}
	if p.Profile.Name == "" {
		return nil, errors.New("parse content: profile.name is required")
	}
	return &p, nil
}

// IsList reports whether name is a section rendered through progressive disclosure.
func IsList(name string) bool {
	switch name {
	case SectionSkills, SectionExperience, SectionProjects, SectionEducation:
		return true
	}
	return false
}

// Size returns the item count and initial visible count of a list section.
func (p *Portfolio) Size(name string) (total, initialVisible int, err error) {
	switch name {
	case SectionSkills:
		return len(p.Skills.Items), p.Skills.InitialVisible, nil
	case SectionExperience:
		return len(p.Experience.Items), p.Experience.InitialVisible, nil
	case SectionProjects:
		return len(p.Projects.Items), p.Projects.InitialVisible, nil
	case SectionEducation:
		return len(p.Education.Items), p.Education.InitialVisible, nil
	}
	return 0, 0, fmt.Errorf("%w: %q", ErrUnknownSection, name)
}
