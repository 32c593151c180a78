package ui

import (
	"testing"

	"github.com/ricar232/Portafolio/internal/model"
)

func TestProjectFilterString(t *testing.T) {
	tests := []struct {
		filter   ProjectFilter
		expected string
	}{
		{FilterAll, "All"},
		{FilterWeb, "Web"},
		{FilterMobile, "Mobile"},
		{FilterTools, "Tools"},
		{ProjectFilter("bogus"), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.filter.String(); got != tt.expected {
			t.Errorf("ProjectFilter(%q).String() = %q, want %q", string(tt.filter), got, tt.expected)
		}
	}
}

func TestShouldShowProject(t *testing.T) {
	web := &model.Project{Title: "site", Category: model.CategoryWeb}
	mobile := &model.Project{Title: "app", Category: model.CategoryMobile}
	tools := &model.Project{Title: "cli", Category: model.CategoryTools}

	tests := []struct {
		name     string
		filter   ProjectFilter
		project  *model.Project
		expected bool
	}{
		{"all shows web", FilterAll, web, true},
		{"all shows mobile", FilterAll, mobile, true},
		{"all shows tools", FilterAll, tools, true},
		{"web shows web", FilterWeb, web, true},
		{"web hides mobile", FilterWeb, mobile, false},
		{"mobile shows mobile", FilterMobile, mobile, true},
		{"mobile hides tools", FilterMobile, tools, false},
		{"tools shows tools", FilterTools, tools, true},
		{"tools hides web", FilterTools, web, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shouldShowProject(tt.filter, tt.project); got != tt.expected {
				t.Errorf("shouldShowProject(%q, %q) = %v, want %v", tt.filter, tt.project.Title, got, tt.expected)
			}
		})
	}
}

func TestIsNarrow(t *testing.T) {
	if IsNarrow(NarrowLayoutWidth) {
		t.Errorf("width equal to the threshold should use the wide layout")
	}
	if !IsNarrow(NarrowLayoutWidth - 1) {
		t.Errorf("width below the threshold should use the narrow layout")
	}
}
