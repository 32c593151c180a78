package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle      = "app_title"
	KeyNavHome       = "nav_home"
	KeyNavAbout      = "nav_about"
	KeyNavStats      = "nav_stats"
	KeyNavSkills     = "nav_skills"
	KeyNavProjects   = "nav_projects"
	KeyNavContact    = "nav_contact"
	KeyAboutTitle    = "about_title"
	KeyStatsTitle    = "stats_title"
	KeySkillsTitle   = "skills_title"
	KeyProjectsTitle = "projects_title"
	KeyContactTitle  = "contact_title"
	KeyFilterAll     = "filter_all"
	KeyFilterWeb     = "filter_web"
	KeyFilterMobile  = "filter_mobile"
	KeyFilterTools   = "filter_tools"
	KeyCode          = "code"
	KeyDemo          = "demo"
	KeyFormName      = "form_name"
	KeyFormEmail     = "form_email"
	KeyFormPhone     = "form_phone"
	KeyFormSubject   = "form_subject"
	KeyFormMessage   = "form_message"
	KeySend          = "send"
	KeySending       = "sending"
	KeyMessageSent   = "message_sent"
	KeyMessageFailed = "message_failed"
	KeyFixFormErrors = "fix_form_errors"
	KeySettings      = "settings"
	KeyTheme         = "theme"
	KeyThemeDark     = "theme_dark"
	KeyThemeLight    = "theme_light"
	KeyLanguage      = "language"
	KeyReduceMotion  = "reduce_motion"
	KeySettingsSaved = "settings_saved"
	KeySave          = "save"
	KeyCancel        = "cancel"
	KeyMenu          = "menu"
	KeyErrorOpenLink = "error_open_link"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetCurrentLanguage returns the active language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns the supported language codes with labels
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"es": "Español",
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// initializeTexts fills the translation tables
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:      "Portafolio",
		KeyNavHome:       "Home",
		KeyNavAbout:      "About",
		KeyNavStats:      "Numbers",
		KeyNavSkills:     "Skills",
		KeyNavProjects:   "Projects",
		KeyNavContact:    "Contact",
		KeyAboutTitle:    "About me",
		KeyStatsTitle:    "By the numbers",
		KeySkillsTitle:   "Skills",
		KeyProjectsTitle: "Projects",
		KeyContactTitle:  "Get in touch",
		KeyFilterAll:     "All",
		KeyFilterWeb:     "Web",
		KeyFilterMobile:  "Mobile",
		KeyFilterTools:   "Tools",
		KeyCode:          "Code",
		KeyDemo:          "Demo",
		KeyFormName:      "Name",
		KeyFormEmail:     "Email",
		KeyFormPhone:     "Phone (optional)",
		KeyFormSubject:   "Subject (optional)",
		KeyFormMessage:   "Message",
		KeySend:          "Send message",
		KeySending:       "Sending…",
		KeyMessageSent:   "Thanks! Your message was sent.",
		KeyMessageFailed: "Sorry, the message could not be sent. Please try again.",
		KeyFixFormErrors: "Please fix the highlighted fields.",
		KeySettings:      "Settings",
		KeyTheme:         "Theme",
		KeyThemeDark:     "Dark",
		KeyThemeLight:    "Light",
		KeyLanguage:      "Language",
		KeyReduceMotion:  "Reduce motion",
		KeySettingsSaved: "Settings saved",
		KeySave:          "Save",
		KeyCancel:        "Cancel",
		KeyMenu:          "Menu",
		KeyErrorOpenLink: "Could not open the link",
	}

	l.texts["es"] = map[string]string{
		KeyAppTitle:      "Portafolio",
		KeyNavHome:       "Inicio",
		KeyNavAbout:      "Acerca de",
		KeyNavStats:      "Cifras",
		KeyNavSkills:     "Habilidades",
		KeyNavProjects:   "Proyectos",
		KeyNavContact:    "Contacto",
		KeyAboutTitle:    "Acerca de mí",
		KeyStatsTitle:    "En cifras",
		KeySkillsTitle:   "Habilidades",
		KeyProjectsTitle: "Proyectos",
		KeyContactTitle:  "Contáctame",
		KeyFilterAll:     "Todos",
		KeyFilterWeb:     "Web",
		KeyFilterMobile:  "Móvil",
		KeyFilterTools:   "Herramientas",
		KeyCode:          "Código",
		KeyDemo:          "Demo",
		KeyFormName:      "Nombre",
		KeyFormEmail:     "Correo",
		KeyFormPhone:     "Teléfono (opcional)",
		KeyFormSubject:   "Asunto (opcional)",
		KeyFormMessage:   "Mensaje",
		KeySend:          "Enviar mensaje",
		KeySending:       "Enviando…",
		KeyMessageSent:   "¡Gracias! Tu mensaje fue enviado.",
		KeyMessageFailed: "Lo sentimos, no se pudo enviar el mensaje. Inténtalo de nuevo.",
		KeyFixFormErrors: "Corrige los campos marcados.",
		KeySettings:      "Configuración",
		KeyTheme:         "Tema",
		KeyThemeDark:     "Oscuro",
		KeyThemeLight:    "Claro",
		KeyLanguage:      "Idioma",
		KeyReduceMotion:  "Reducir animaciones",
		KeySettingsSaved: "Configuración guardada",
		KeySave:          "Guardar",
		KeyCancel:        "Cancelar",
		KeyMenu:          "Menú",
		KeyErrorOpenLink: "No se pudo abrir el enlace",
	}
}
