package model

import "testing"

func TestProjectTagLine(t *testing.T) {
	project := &Project{
		Tags: []string{"Go", "Fyne", "SQLite"},
	}

	expected := "Go · Fyne · SQLite"
	if got := project.TagLine(); got != expected {
		t.Errorf("Expected tag line '%s', got '%s'", expected, got)
	}

	empty := &Project{}
	if got := empty.TagLine(); got != "" {
		t.Errorf("Expected empty tag line, got '%s'", got)
	}
}

func TestProjectLinks(t *testing.T) {
	project := &Project{
		RepoURL: "https://github.com/ricar232/example",
	}

	if !project.HasRepo() {
		t.Error("Expected project to have a repo link")
	}

	if project.HasDemo() {
		t.Error("Expected project to not have a demo link")
	}

	project.DemoURL = "   "
	if project.HasDemo() {
		t.Error("Expected whitespace demo URL to count as missing")
	}

	project.DemoURL = "https://example.com"
	if !project.HasDemo() {
		t.Error("Expected project to have a demo link")
	}
}
