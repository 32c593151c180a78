package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ricar232/Portafolio/internal/config"
)

// ShowSettingsDialog shows the settings dialog: theme flag, language, and
// reduce motion. Saving persists the choices and invokes onApplied so the
// root UI can re-theme and re-render.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, loc *Localization, onApplied func()) {
	themeOptions := []string{loc.GetText(KeyThemeDark), loc.GetText(KeyThemeLight)}
	themeRadio := widget.NewRadioGroup(themeOptions, nil)
	if settings.GetTheme() == config.ThemeLight {
		themeRadio.SetSelected(themeOptions[1])
	} else {
		themeRadio.SetSelected(themeOptions[0])
	}

	languages := settings.GetLanguageOptions()
	languageCodes := []string{"system", "en", "es"}
	languageLabels := make([]string, 0, len(languageCodes))
	for _, code := range languageCodes {
		languageLabels = append(languageLabels, languages[code])
	}
	languageSelect := widget.NewSelect(languageLabels, nil)
	languageSelect.SetSelected(languages[settings.GetLanguage()])

	reduceMotionCheck := widget.NewCheck(loc.GetText(KeyReduceMotion), nil)
	reduceMotionCheck.SetChecked(settings.GetReduceMotion())

	items := []*widget.FormItem{
		widget.NewFormItem(loc.GetText(KeyTheme), themeRadio),
		widget.NewFormItem(loc.GetText(KeyLanguage), languageSelect),
		widget.NewFormItem("", reduceMotionCheck),
	}

	dialog.ShowForm(loc.GetText(KeySettings), loc.GetText(KeySave), loc.GetText(KeyCancel), items,
		func(save bool) {
			if !save {
				return
			}

			flag := config.ThemeDark
			if themeRadio.Selected == themeOptions[1] {
				flag = config.ThemeLight
			}
			settings.SetTheme(flag)

			for _, code := range languageCodes {
				if languages[code] == languageSelect.Selected {
					settings.SetLanguage(code)
					break
				}
			}

			settings.SetReduceMotion(reduceMotionCheck.Checked)

			if onApplied != nil {
				onApplied()
			}
			ShowToast(window.Canvas(), IconSettings, loc.GetText(KeySettingsSaved))
		}, window)
}
