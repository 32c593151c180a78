// Package content holds the portfolio copy shipped with the app: the profile,
// stats, skills, and project cards the UI renders. Keeping the copy in source
// keeps the binary self-contained; swap this package out to reuse the app for
// another person.
package content

import (
	"time"

	"github.com/ricar232/Portafolio/internal/model"
)

// Counter animation duration shared by all stats
const StatDuration = 2 * time.Second

// DefaultProfile returns the portfolio content shipped with the app
func DefaultProfile() *model.Profile {
	return &model.Profile{
		Name:     "Ricardo Morales",
		Role:     "Full-Stack Developer",
		Tagline:  "I build useful things for the web, the terminal, and everything in between.",
		Location: "Guadalajara, MX",
		Email:    "hello@ricardomorales.dev",
		About: []string{
			`I love building software that is both useful and fun, and I am always curious
about how things work behind the scenes. Most of my projects start with a simple
idea and turn into a chance to learn something new.`,
			`When I am not coding you will usually find me bouldering, taking photos around
the city, or chasing down a new challenge away from the screen.`,
		},
		Socials: []model.SocialLink{
			{Label: "GitHub", URL: "https://github.com/ricar232"},
			{Label: "LinkedIn", URL: "https://www.linkedin.com/in/ricar232"},
			{Label: "X", URL: "https://x.com/ricar232"},
		},
		Stats: []model.Stat{
			{Label: "Projects shipped", Target: 24, Suffix: "+", Duration: StatDuration},
			{Label: "Years of experience", Target: 6, Suffix: "", Duration: StatDuration},
			{Label: "Open source contributions", Target: 180, Suffix: "+", Duration: StatDuration},
			{Label: "Coffee consumed (cups)", Target: 4700, Suffix: "+", Duration: StatDuration},
		},
		Skills: []model.Skill{
			{Name: "Go", Percent: 90},
			{Name: "TypeScript", Percent: 80},
			{Name: "SQL / data modeling", Percent: 75},
			{Name: "Cloud & CI/CD", Percent: 70},
			{Name: "UI / UX", Percent: 60},
		},
		Projects: []model.Project{
			{
				Title:    "Mailfish",
				Summary:  "A terminal email client with fuzzy search across folders and accounts.",
				Category: model.CategoryTools,
				Tags:     []string{"Go", "IMAP", "TUI"},
				RepoURL:  "https://github.com/ricar232/mailfish",
			},
			{
				Title:    "Pulso",
				Summary:  "Realtime habit tracker with streak analytics and offline-first sync.",
				Category: model.CategoryMobile,
				Tags:     []string{"Flutter", "SQLite"},
				RepoURL:  "https://github.com/ricar232/pulso",
				DemoURL:  "https://pulso.app",
			},
			{
				Title:    "Recomendado",
				Summary:  "Game recommendation engine using TF-IDF and cosine similarity over reviews.",
				Category: model.CategoryWeb,
				Tags:     []string{"Python", "scikit-learn", "FastAPI"},
				RepoURL:  "https://github.com/ricar232/recomendado",
				DemoURL:  "https://recomendado.ricardomorales.dev",
			},
			{
				Title:    "Portafolio",
				Summary:  "This very app: a desktop portfolio with scroll-driven animations, built in Go.",
				Category: model.CategoryWeb,
				Tags:     []string{"Go", "Fyne"},
				RepoURL:  "https://github.com/ricar232/Portafolio",
			},
			{
				Title:    "envsnap",
				Summary:  "CLI that snapshots and diffs development environment configuration.",
				Category: model.CategoryTools,
				Tags:     []string{"Go", "Cobra"},
				RepoURL:  "https://github.com/ricar232/envsnap",
			},
			{
				Title:    "Rutas GDL",
				Summary:  "Mobile transit companion for Guadalajara with live route updates.",
				Category: model.CategoryMobile,
				Tags:     []string{"Kotlin", "GTFS"},
				RepoURL:  "https://github.com/ricar232/rutas-gdl",
			},
		},
	}
}
