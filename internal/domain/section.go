package domain

import "fmt"

// Section is an in-page anchor target of the landing page.
type Section string

const (
	SectionAbout       Section = "about"
	SectionIngredients Section = "ingredients"
	SectionProducts    Section = "products"
	SectionContact     Section = "contact"

	// SectionNone is the target of placeholder links (href="#").
	SectionNone Section = "top"
)

// IsValid checks if the section is one of the known anchors.
func (s Section) IsValid() bool {
	switch s {
	case SectionAbout, SectionIngredients, SectionProducts, SectionContact, SectionNone:
		return true
	default:
		return false
	}
}

// Anchor returns the URL fragment for the section, including the leading '#'.
func (s Section) Anchor() string {
	if s == SectionNone {
		return "#"
	}
	return "#" + string(s)
}

// ParseSection converts a path segment into a Section.
func ParseSection(raw string) (Section, error) {
	s := Section(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownSection, raw)
	}
	return s, nil
}
