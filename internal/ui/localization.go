package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle      = "app_title"
	KeyTimerIdle     = "timer_idle"
	KeyTimerFinished = "timer_finished"
	KeyWeight        = "weight"
	KeyUnitKg        = "unit_kg"
	KeySettings      = "settings"
	KeyLanguage      = "language"
	KeyTheme         = "theme"
	KeySave          = "save"
	KeyCancel        = "cancel"
	KeySettingsSaved = "settings_saved"

	// Exercise names, keyed by the template name
	KeySquat         = "Squat"
	KeyBenchPress    = "Bench Press"
	KeyOverheadPress = "Overhead Press"
	KeyBarbellRow    = "Barbell Row"
	KeyDeadlift      = "Deadlift"
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

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:      "WorkOut!",
		KeyTimerIdle:     "Timer",
		KeyTimerFinished: "Start next set!",
		KeyWeight:        "Weight",
		KeyUnitKg:        "kg",
		KeySettings:      "Settings",
		KeyLanguage:      "Language",
		KeyTheme:         "Theme",
		KeySave:          "Save",
		KeyCancel:        "Cancel",
		KeySettingsSaved: "Settings saved successfully!",
		KeySquat:         "Squat",
		KeyBenchPress:    "Bench Press",
		KeyOverheadPress: "Overhead Press",
		KeyBarbellRow:    "Barbell Row",
		KeyDeadlift:      "Deadlift",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:      "Тренировка!",
		KeyTimerIdle:     "Таймер",
		KeyTimerFinished: "Начинайте следующий подход!",
		KeyWeight:        "Вес",
		KeyUnitKg:        "кг",
		KeySettings:      "Настройки",
		KeyLanguage:      "Язык",
		KeyTheme:         "Тема",
		KeySave:          "Сохранить",
		KeyCancel:        "Отмена",
		KeySettingsSaved: "Настройки успешно сохранены!",
		KeySquat:         "Присед",
		KeyBenchPress:    "Жим лёжа",
		KeyOverheadPress: "Жим стоя",
		KeyBarbellRow:    "Тяга штанги в наклоне",
		KeyDeadlift:      "Становая тяга",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:      "Treino!",
		KeyTimerIdle:     "Cronômetro",
		KeyTimerFinished: "Comece a próxima série!",
		KeyWeight:        "Peso",
		KeyUnitKg:        "kg",
		KeySettings:      "Configurações",
		KeyLanguage:      "Idioma",
		KeyTheme:         "Tema",
		KeySave:          "Salvar",
		KeyCancel:        "Cancelar",
		KeySettingsSaved: "Configurações salvas com sucesso!",
		KeySquat:         "Agachamento",
		KeyBenchPress:    "Supino",
		KeyOverheadPress: "Desenvolvimento",
		KeyBarbellRow:    "Remada curvada",
		KeyDeadlift:      "Levantamento terra",
	}
}
