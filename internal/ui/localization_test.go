package ui

import "testing"

func TestLocalizationDefaultsToEnglish(t *testing.T) {
	loc := NewLocalization()

	if loc.GetCurrentLanguage() != "en" {
		t.Errorf("Expected default language en, got %s", loc.GetCurrentLanguage())
	}
	if got := loc.GetText(KeyNavHome); got != "Home" {
		t.Errorf("Expected 'Home', got %q", got)
	}
}

func TestLocalizationSpanish(t *testing.T) {
	loc := NewLocalization()
	loc.SetLanguage("es")

	if got := loc.GetText(KeyNavProjects); got != "Proyectos" {
		t.Errorf("Expected 'Proyectos', got %q", got)
	}
}

func TestLocalizationUnknownLanguageKeepsCurrent(t *testing.T) {
	loc := NewLocalization()
	loc.SetLanguage("fr")

	if loc.GetCurrentLanguage() != "en" {
		t.Errorf("Unsupported language should not change the current one, got %s", loc.GetCurrentLanguage())
	}
}

func TestLocalizationSystemResolves(t *testing.T) {
	loc := NewLocalization()
	loc.SetLanguage("es")
	loc.SetLanguage("system")

	if loc.GetCurrentLanguage() != "en" {
		t.Errorf("system should resolve to en, got %s", loc.GetCurrentLanguage())
	}
}

func TestLocalizationUnknownKeyFallsThrough(t *testing.T) {
	loc := NewLocalization()

	if got := loc.GetText("nonexistent_key"); got != "nonexistent_key" {
		t.Errorf("Unknown key should return the key itself, got %q", got)
	}
}

func TestNavKeyForCoversAllSections(t *testing.T) {
	for _, id := range SectionOrder {
		if navKeyFor(id) == id {
			t.Errorf("Section %q has no nav localization key", id)
		}
	}
}
