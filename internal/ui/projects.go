package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ricar232/Portafolio/internal/model"
)

// ProjectFilter selects which project categories are visible
type ProjectFilter string

const (
	FilterAll    ProjectFilter = "all"
	FilterWeb    ProjectFilter = "web"
	FilterMobile ProjectFilter = "mobile"
	FilterTools  ProjectFilter = "tools"
)

// String returns the human-readable filter name
func (f ProjectFilter) String() string {
	switch f {
	case FilterAll:
		return "All"
	case FilterWeb:
		return "Web"
	case FilterMobile:
		return "Mobile"
	case FilterTools:
		return "Tools"
	default:
		return "Unknown"
	}
}

// shouldShowProject determines if a project passes the active filter
func shouldShowProject(filter ProjectFilter, project *model.Project) bool {
	switch filter {
	case FilterAll:
		return true
	case FilterWeb:
		return project.Category == model.CategoryWeb
	case FilterMobile:
		return project.Category == model.CategoryMobile
	case FilterTools:
		return project.Category == model.CategoryTools
	default:
		return true
	}
}

// ProjectsSection renders the filter buttons and the project card grid.
// Changing the filter rebuilds the grid with only the matching cards.
type ProjectsSection struct {
	widget.BaseWidget

	projects []model.Project
	loc      *Localization
	openLink func(url string)

	currentFilter ProjectFilter
	filterButtons map[ProjectFilter]*widget.Button
	grid          *fyne.Container
}

// NewProjectsSection creates the projects section showing all projects
func NewProjectsSection(projects []model.Project, loc *Localization, openLink func(url string)) *ProjectsSection {
	ps := &ProjectsSection{
		projects:      projects,
		loc:           loc,
		openLink:      openLink,
		currentFilter: FilterAll,
		filterButtons: make(map[ProjectFilter]*widget.Button),
		grid:          container.NewGridWithColumns(ProjectColumns),
	}
	ps.ExtendBaseWidget(ps)
	ps.rebuildGrid()
	return ps
}

// CreateRenderer builds the section layout
func (ps *ProjectsSection) CreateRenderer() fyne.WidgetRenderer {
	filters := []struct {
		filter ProjectFilter
		key    string
	}{
		{FilterAll, KeyFilterAll},
		{FilterWeb, KeyFilterWeb},
		{FilterMobile, KeyFilterMobile},
		{FilterTools, KeyFilterTools},
	}

	buttons := make([]fyne.CanvasObject, 0, len(filters))
	for _, f := range filters {
		filter := f.filter
		btn := widget.NewButton(ps.loc.GetText(f.key), func() {
			ps.SetFilter(filter)
		})
		ps.filterButtons[filter] = btn
		buttons = append(buttons, btn)
	}
	ps.highlightFilter()

	bar := container.NewHBox(buttons...)
	return widget.NewSimpleRenderer(container.NewVBox(bar, ps.grid))
}

// SetFilter applies a category filter and refreshes the grid
func (ps *ProjectsSection) SetFilter(filter ProjectFilter) {
	if filter == ps.currentFilter {
		return
	}
	ps.currentFilter = filter
	ps.highlightFilter()
	ps.rebuildGrid()
	ps.Refresh()
}

// CurrentFilter returns the active filter
func (ps *ProjectsSection) CurrentFilter() ProjectFilter {
	return ps.currentFilter
}

// VisibleCount returns how many projects pass the active filter
func (ps *ProjectsSection) VisibleCount() int {
	count := 0
	for i := range ps.projects {
		if shouldShowProject(ps.currentFilter, &ps.projects[i]) {
			count++
		}
	}
	return count
}

// rebuildGrid repopulates the grid with the cards matching the filter
func (ps *ProjectsSection) rebuildGrid() {
	ps.grid.RemoveAll()
	for i := range ps.projects {
		project := &ps.projects[i]
		if !shouldShowProject(ps.currentFilter, project) {
			continue
		}
		ps.grid.Add(NewProjectCard(project, ps.loc, ps.openLink))
	}
	ps.grid.Refresh()
}

// highlightFilter marks the active filter button
func (ps *ProjectsSection) highlightFilter() {
	for filter, btn := range ps.filterButtons {
		if filter == ps.currentFilter {
			btn.Importance = widget.HighImportance
		} else {
			btn.Importance = widget.MediumImportance
		}
		btn.Refresh()
	}
}
