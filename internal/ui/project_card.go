package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ricar232/Portafolio/internal/model"
)

// ProjectCard displays one project: title, summary, technology tags and
// optional Code/Demo link buttons
type ProjectCard struct {
	widget.BaseWidget

	project  *model.Project
	loc      *Localization
	openLink func(url string)
}

// NewProjectCard creates a card for the given project
func NewProjectCard(project *model.Project, loc *Localization, openLink func(url string)) *ProjectCard {
	pc := &ProjectCard{project: project, loc: loc, openLink: openLink}
	pc.ExtendBaseWidget(pc)
	return pc
}

// CreateRenderer builds the card layout
func (pc *ProjectCard) CreateRenderer() fyne.WidgetRenderer {
	title := widget.NewLabel(pc.project.Title)
	title.TextStyle = fyne.TextStyle{Bold: true}

	summary := widget.NewLabel(pc.project.Summary)
	summary.Wrapping = fyne.TextWrapWord

	tags := widget.NewLabel(pc.project.TagLine())
	tags.TextStyle = fyne.TextStyle{Italic: true}

	links := container.NewHBox()
	if pc.project.HasRepo() {
		repoURL := pc.project.RepoURL
		codeBtn := widget.NewButton(IconCode+" "+pc.loc.GetText(KeyCode), func() {
			pc.openLink(repoURL)
		})
		links.Add(codeBtn)
	}
	if pc.project.HasDemo() {
		demoURL := pc.project.DemoURL
		demoBtn := widget.NewButton(IconLink+" "+pc.loc.GetText(KeyDemo), func() {
			pc.openLink(demoURL)
		})
		links.Add(demoBtn)
	}

	card := widget.NewCard("", "", container.NewVBox(title, summary, tags, links))
	return widget.NewSimpleRenderer(card)
}

// MinSize keeps cards from collapsing below a readable width
func (pc *ProjectCard) MinSize() fyne.Size {
	min := pc.BaseWidget.MinSize()
	if min.Width < CardMinWidth {
		min.Width = CardMinWidth
	}
	return min
}
