// Package content holds the static copy shown by the portfolio views.
package content

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

type Profile struct {
	Name     string `yaml:"name"`
	Title    string `yaml:"title"`
	Location string `yaml:"location"`
	About    string `yaml:"about"`
	Email    string `yaml:"email"`
	Phone    string `yaml:"phone"`
}

type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

type Category struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
}

type Project struct {
	Title    string   `yaml:"title"`
	Category string   `yaml:"category"`
	Demo     string   `yaml:"demo"`
	Summary  string   `yaml:"summary"`
	Tech     []string `yaml:"tech"`
}

type Skill struct {
	Name   string `yaml:"name"`
	Detail string `yaml:"detail"`
}

type Content struct {
	Profile    Profile    `yaml:"profile"`
	Links      []Link     `yaml:"links"`
	Categories []Category `yaml:"categories"`
	Projects   []Project  `yaml:"projects"`
	Skills     []Skill    `yaml:"skills"`
}

// AllCategory matches every project.
const AllCategory = "all"

// Default returns the embedded content.
func Default() *Content {
	c, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("content: embedded default is invalid: %v", err))
	}
	return c
}

func Load(path string) (*Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("content: %w", err)
	}
	if c.Profile.Name == "" {
		return nil, fmt.Errorf("content: profile name is required")
	}
	if len(c.Categories) == 0 || c.Categories[0].ID != AllCategory {
		c.Categories = append([]Category{{ID: AllCategory, Label: "All"}}, c.Categories...)
	}
	return &c, nil
}

// FilterProjects returns the projects whose category contains id. The
// match is by substring, so "ai" also selects "ai_web" and "ai_cloud_web".
func (c *Content) FilterProjects(id string) []Project {
	if id == "" || id == AllCategory {
		return c.Projects
	}
	var out []Project
	for _, p := range c.Projects {
		if strings.Contains(p.Category, id) {
			out = append(out, p)
		}
	}
	return out
}

// CategoryIndex returns the position of id in Categories, or 0.
func (c *Content) CategoryIndex(id string) int {
	for i, cat := range c.Categories {
		if cat.ID == id {
			return i
		}
	}
	return 0
}
