package model

import "time"

// Profile holds the portfolio owner's presentation content
type Profile struct {
	Name     string
	Role     string
	Tagline  string
	About    []string // paragraphs
	Location string
	Email    string
	Socials  []SocialLink
	Stats    []Stat
	Skills   []Skill
	Projects []Project
}

// SocialLink is an external profile link shown in the hero and footer
type SocialLink struct {
	Label string
	URL   string
}

// Stat is an animated counter: the displayed value counts up from zero to
// Target over Duration once the stat scrolls into view
type Stat struct {
	Label    string
	Target   int
	Suffix   string // e.g. "+" or "%"
	Duration time.Duration
}

// Skill is a progress-bar entry; Percent is the bar fill target (0-100)
type Skill struct {
	Name    string
	Percent int
}
