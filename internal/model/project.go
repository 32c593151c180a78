package model

import "strings"

// ProjectCategory classifies a portfolio project for filtering
type ProjectCategory string

const (
	// CategoryWeb covers browser-facing projects
	CategoryWeb ProjectCategory = "web"

	// CategoryMobile covers mobile applications
	CategoryMobile ProjectCategory = "mobile"

	// CategoryTools covers CLIs, libraries and infrastructure tooling
	CategoryTools ProjectCategory = "tools"
)

// Project represents a single portfolio project card
type Project struct {
	Title    string
	Summary  string
	Category ProjectCategory
	Tags     []string // technologies used, shown as a tag line
	RepoURL  string   // source repository, empty if private
	DemoURL  string   // live demo, empty if none
}

// TagLine returns the technology tags joined for display
func (p *Project) TagLine() string {
	return strings.Join(p.Tags, " · ")
}

// HasRepo returns true if the project links to a source repository
func (p *Project) HasRepo() bool {
	return strings.TrimSpace(p.RepoURL) != ""
}

// HasDemo returns true if the project links to a live demo
func (p *Project) HasDemo() bool {
	return strings.TrimSpace(p.DemoURL) != ""
}
