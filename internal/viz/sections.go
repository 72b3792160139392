package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/folio/internal/content"
)

type section int

const (
	sectionHome section = iota
	sectionAbout
	sectionProjects
	sectionSkills
	sectionContact
	sectionCount
)

var sectionLabels = [sectionCount]string{"Home", "About", "Projects", "Skills", "Contact"}

func (s section) String() string { return strings.ToLower(sectionLabels[s]) }

func parseSection(name string) section {
	for i, l := range sectionLabels {
		if strings.EqualFold(l, name) {
			return section(i)
		}
	}
	return sectionHome
}

func renderAbout(st styles, c *content.Content, width int) string {
	var b strings.Builder
	b.WriteString(st.title.Render("About Me") + "\n")
	b.WriteString(st.subtitle.Render(c.Profile.Title) + "\n")
	if c.Profile.Location != "" {
		b.WriteString(st.muted.Render(c.Profile.Location) + "\n")
	}
	b.WriteString(Separator(min(width, 60), st.muted) + "\n\n")
	b.WriteString(st.text.Width(width).Render(c.Profile.About))
	return b.String()
}

func renderProjects(st styles, c *content.Content, filter int, width int) string {
	var b strings.Builder
	b.WriteString(st.title.Render("Projects") + "\n")

	chips := make([]string, len(c.Categories))
	for i, cat := range c.Categories {
		if i == filter {
			chips[i] = st.chipOn.Render(cat.Label)
		} else {
			chips[i] = st.chip.Render(cat.Label)
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, chips...) + "\n\n")

	id := c.Categories[filter].ID
	projects := c.FilterProjects(id)
	if len(projects) == 0 {
		b.WriteString(st.muted.Render("no projects in this category"))
		return b.String()
	}
	cardWidth := max(width-2, 10)
	for _, p := range projects {
		body := st.subtitle.Render(p.Title) + "\n" +
			st.text.Render(p.Summary) + "\n" +
			st.tag.Render(strings.Join(p.Tech, " · "))
		if p.Demo != "" {
			body += "\n" + st.link.Render(p.Demo)
		}
		b.WriteString(st.card.Width(cardWidth).Render(body) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderSkills(st styles, c *content.Content, width int) string {
	var b strings.Builder
	b.WriteString(st.title.Render("Skills") + "\n")

	cols := 1
	if width >= 90 {
		cols = 2
	}
	cardWidth := max(width/cols-2, 10)
	cards := make([]string, len(c.Skills))
	for i, s := range c.Skills {
		cards[i] = st.card.Width(cardWidth).Render(st.subtitle.Render(s.Name) + "\n" + st.muted.Render(s.Detail))
	}
	for i := 0; i < len(cards); i += cols {
		end := min(i+cols, len(cards))
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderContact(st styles, c *content.Content, width int) string {
	var b strings.Builder
	b.WriteString(st.title.Render("Get In Touch") + "\n")
	rows := []struct{ label, value string }{
		{"Email", c.Profile.Email},
		{"Phone", c.Profile.Phone},
		{"Location", c.Profile.Location},
	}
	for _, r := range rows {
		if r.value == "" {
			continue
		}
		b.WriteString(fmt.Sprintf("%s %s\n", st.muted.Width(10).Render(r.label), st.text.Render(r.value)))
	}
	for _, l := range c.Links {
		b.WriteString(fmt.Sprintf("%s %s\n", st.muted.Width(10).Render(l.Label), st.link.Render(l.URL)))
	}
	return strings.TrimRight(b.String(), "\n")
}
