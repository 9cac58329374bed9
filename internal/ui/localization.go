package ui

import "sort"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle              = "app_title"
	KeySettings              = "settings"
	KeyFile                  = "file"
	KeyLanguage              = "language"
	KeySave                  = "save"
	KeyCancel                = "cancel"
	KeyOK                    = "ok"
	KeyBrowse                = "browse"
	KeySettingsSaved         = "settings_saved"
	KeyChooseType            = "choose_type"
	KeyChooseResolution      = "choose_resolution"
	KeyEnterLinks            = "enter_links"
	KeyChooseFolder          = "choose_folder"
	KeyDefaultFolder         = "default_folder"
	KeyOpenFolder            = "open_folder"
	KeySetDefaultFolder      = "set_default_folder"
	KeyStartDownload         = "start_download"
	KeyInputErrorTitle       = "input_error_title"
	KeyInputErrorMessage     = "input_error_message"
	KeyInvalidLinkTitle      = "invalid_link_title"
	KeyInvalidLinkMessage    = "invalid_link_message"
	KeyFolderNotFoundTitle   = "folder_not_found_title"
	KeyFolderNotFoundMessage = "folder_not_found_message"
	KeyDownloadErrorTitle    = "download_error_title"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: LanguageDefault,
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. Unknown codes are ignored.
func (l *Localization) SetLanguage(lang string) {
	if lang == LanguageSystem {
		lang = LanguageDefault
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
	if texts, exists := l.texts[LanguageDefault]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// LanguageCodes returns the available language codes in a stable order
func (l *Localization) LanguageCodes() []string {
	codes := make([]string, 0, len(l.texts))
	for code := range l.texts {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:              "YouTube Downloader",
		KeySettings:              "Settings",
		KeyFile:                  "File",
		KeyLanguage:              "Language",
		KeySave:                  "Save",
		KeyCancel:                "Cancel",
		KeyOK:                    "OK",
		KeyBrowse:                "Browse",
		KeySettingsSaved:         "Settings saved successfully!",
		KeyChooseType:            "Choose the type of download:",
		KeyChooseResolution:      "Choose the resolution:",
		KeyEnterLinks:            "Enter YouTube links (one per line):",
		KeyChooseFolder:          "Choose download folder:",
		KeyDefaultFolder:         "Default download folder:",
		KeyOpenFolder:            "Open Folder",
		KeySetDefaultFolder:      "Set this as default download folder",
		KeyStartDownload:         "Start Download",
		KeyInputErrorTitle:       "Input Error",
		KeyInputErrorMessage:     "Please provide valid links and a download folder.",
		KeyInvalidLinkTitle:      "Invalid Link",
		KeyInvalidLinkMessage:    "One or more links are not valid YouTube URLs.",
		KeyFolderNotFoundTitle:   "Folder Not Found",
		KeyFolderNotFoundMessage: "The specified folder does not exist.",
		KeyDownloadErrorTitle:    "Download Error",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:              "YouTube Загрузчик",
		KeySettings:              "Настройки",
		KeyFile:                  "Файл",
		KeyLanguage:              "Язык",
		KeySave:                  "Сохранить",
		KeyCancel:                "Отмена",
		KeyOK:                    "ОК",
		KeyBrowse:                "Обзор",
		KeySettingsSaved:         "Настройки успешно сохранены!",
		KeyChooseType:            "Выберите тип загрузки:",
		KeyChooseResolution:      "Выберите разрешение:",
		KeyEnterLinks:            "Введите ссылки YouTube (по одной в строке):",
		KeyChooseFolder:          "Выберите папку загрузки:",
		KeyDefaultFolder:         "Папка загрузки по умолчанию:",
		KeyOpenFolder:            "Открыть папку",
		KeySetDefaultFolder:      "Сделать эту папку папкой по умолчанию",
		KeyStartDownload:         "Начать загрузку",
		KeyInputErrorTitle:       "Ошибка ввода",
		KeyInputErrorMessage:     "Укажите корректные ссылки и папку загрузки.",
		KeyInvalidLinkTitle:      "Неверная ссылка",
		KeyInvalidLinkMessage:    "Одна или несколько ссылок не являются ссылками YouTube.",
		KeyFolderNotFoundTitle:   "Папка не найдена",
		KeyFolderNotFoundMessage: "Указанная папка не существует.",
		KeyDownloadErrorTitle:    "Ошибка загрузки",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:              "YouTube Downloader",
		KeySettings:              "Configurações",
		KeyFile:                  "Arquivo",
		KeyLanguage:              "Idioma",
		KeySave:                  "Salvar",
		KeyCancel:                "Cancelar",
		KeyOK:                    "OK",
		KeyBrowse:                "Navegar",
		KeySettingsSaved:         "Configurações salvas com sucesso!",
		KeyChooseType:            "Escolha o tipo de download:",
		KeyChooseResolution:      "Escolha a resolução:",
		KeyEnterLinks:            "Digite os links do YouTube (um por linha):",
		KeyChooseFolder:          "Escolha a pasta de download:",
		KeyDefaultFolder:         "Pasta de download padrão:",
		KeyOpenFolder:            "Abrir pasta",
		KeySetDefaultFolder:      "Definir como pasta de download padrão",
		KeyStartDownload:         "Iniciar download",
		KeyInputErrorTitle:       "Erro de entrada",
		KeyInputErrorMessage:     "Informe links válidos e uma pasta de download.",
		KeyInvalidLinkTitle:      "Link inválido",
		KeyInvalidLinkMessage:    "Um ou mais links não são URLs válidas do YouTube.",
		KeyFolderNotFoundTitle:   "Pasta não encontrada",
		KeyFolderNotFoundMessage: "A pasta especificada não existe.",
		KeyDownloadErrorTitle:    "Erro de download",
	}
}
