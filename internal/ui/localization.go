package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/lang"
)

// LanguageSystem follows the operating system locale
const LanguageSystem = "system"

// fallbackLanguage is used when the system locale has no translation
const fallbackLanguage = "en"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
	systemLocale    func() fyne.Locale
}

// Text keys for localization
const (
	KeyAppTitle   = "app_title"
	KeyHeading    = "heading"
	KeyFooter     = "footer"
	KeySettings   = "settings"
	KeyFile       = "file"
	KeyView       = "view"
	KeyLanguage   = "language"
	KeyTheme      = "theme"
	KeyToggleDark = "toggle_dark"
	KeySave       = "save"
	KeyCancel     = "cancel"
	KeyConfirm    = "confirm"

	// Form
	KeyAddCountdown     = "add_countdown"
	KeyEditCountdown    = "edit_countdown"
	KeyTitleLabel       = "title_label"
	KeyTitlePlaceholder = "title_placeholder"
	KeyDateLabel        = "date_label"
	KeyTimeLabel        = "time_label"
	KeyPriorityLabel    = "priority_label"
	KeySubmit           = "submit"
	KeyUpdate           = "update"

	// Priorities
	KeyPriorityHigh   = "priority_high"
	KeyPriorityMedium = "priority_medium"
	KeyPriorityLow    = "priority_low"

	// Filters and stats
	KeyFilterTitle   = "filter_title"
	KeyFilterAll     = "filter_all"
	KeyFilterActive  = "filter_active"
	KeyFilterExpired = "filter_expired"
	KeyFilterHigh    = "filter_high"
	KeyFilterMedium  = "filter_medium"
	KeyFilterLow     = "filter_low"
	KeyStatTotal     = "stat_total"
	KeyStatActive    = "stat_active"
	KeyStatExpired   = "stat_expired"
	KeyClearExpired  = "clear_expired"
	KeyClearAll      = "clear_all"

	// Rows
	KeyTargetTime = "target_time"
	KeyExpired    = "expired"
	KeyDays       = "days"
	KeyHours      = "hours"
	KeyMinutes    = "minutes"
	KeySeconds    = "seconds"
	KeyEdit       = "edit"
	KeyDelete     = "delete"

	// Empty states
	KeyEmptyTitle   = "empty_title"
	KeyEmptyHint    = "empty_hint"
	KeyNoMatchTitle = "no_match_title"
	KeyNoMatchHint  = "no_match_hint"

	// Confirmations
	KeyConfirmDelete       = "confirm_delete"
	KeyConfirmClearExpired = "confirm_clear_expired"
	KeyConfirmClearAll     = "confirm_clear_all"

	// Toasts
	KeyCountdownAdded   = "countdown_added"
	KeyCountdownUpdated = "countdown_updated"
	KeyCountdownDeleted = "countdown_deleted"
	KeyClearedExpired   = "cleared_expired"
	KeyClearedAll       = "cleared_all"
	KeyErrEmptyTitle    = "err_empty_title"
	KeyErrMissingDate   = "err_missing_date"
	KeyErrInvalidDate   = "err_invalid_date"
	KeyErrTargetPast    = "err_target_past"
	KeyErrPriority      = "err_priority"
	KeyErrNotFound      = "err_not_found"
	KeyErrGeneric       = "err_generic"

	// Settings dialog
	KeyInterfaceSettings = "interface_settings"
	KeyBehaviourSettings = "behaviour_settings"
	KeyResortOnExpiry    = "resort_on_expiry"
	KeyToastSeconds      = "toast_seconds"
	KeySettingsSaved     = "settings_saved"
	KeyThemeSystem       = "theme_system"
	KeyThemeLight        = "theme_light"
	KeyThemeDark         = "theme_dark"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: fallbackLanguage,
		texts:           make(map[string]map[string]string),
		systemLocale:    lang.SystemLocale,
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. "system" picks the translation
// matching the OS locale, or English when there is none.
func (l *Localization) SetLanguage(language string) {
	if language == LanguageSystem {
		language = l.resolveSystemLanguage()
	}

	if _, exists := l.texts[language]; exists {
		l.currentLanguage = language
	}
}

// resolveSystemLanguage maps the OS locale, e.g. "zh-CN", onto a translation
func (l *Localization) resolveSystemLanguage() string {
	if l.systemLocale == nil {
		return fallbackLanguage
	}
	code := strings.ToLower(l.systemLocale().LanguageString())
	if _, exists := l.texts[code]; exists {
		return code
	}
	return fallbackLanguage
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

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"zh": "中文",
		"ru": "Русский",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:   "Countdowns",
		KeyHeading:    "What to remember?",
		KeyFooter:     "Data is stored locally and survives restarts",
		KeySettings:   "Settings",
		KeyFile:       "File",
		KeyView:       "View",
		KeyLanguage:   "Language",
		KeyTheme:      "Theme",
		KeyToggleDark: "Toggle dark mode",
		KeySave:       "Save",
		KeyCancel:     "Cancel",
		KeyConfirm:    "Please confirm",

		KeyAddCountdown:     "Add countdown",
		KeyEditCountdown:    "Edit countdown",
		KeyTitleLabel:       "What?",
		KeyTitlePlaceholder: "What should we remember?",
		KeyDateLabel:        "Which day? (YYYY-MM-DD)",
		KeyTimeLabel:        "What time? (HH:MM)",
		KeyPriorityLabel:    "Priority",
		KeySubmit:           "That's it",
		KeyUpdate:           "Update",

		KeyPriorityHigh:   "High",
		KeyPriorityMedium: "Medium",
		KeyPriorityLow:    "Low",

		KeyFilterTitle:   "Filter",
		KeyFilterAll:     "All",
		KeyFilterActive:  "Active",
		KeyFilterExpired: "Expired",
		KeyFilterHigh:    "High priority",
		KeyFilterMedium:  "Medium priority",
		KeyFilterLow:     "Low priority",
		KeyStatTotal:     "Total",
		KeyStatActive:    "Active",
		KeyStatExpired:   "Expired",
		KeyClearExpired:  "Clear expired",
		KeyClearAll:      "Clear all",

		KeyTargetTime: "Target",
		KeyExpired:    "Expired",
		KeyDays:       "days",
		KeyHours:      "hours",
		KeyMinutes:    "min",
		KeySeconds:    "sec",
		KeyEdit:       "Edit",
		KeyDelete:     "Delete",

		KeyEmptyTitle:   "No countdowns yet",
		KeyEmptyHint:    "Add your first countdown to get started!",
		KeyNoMatchTitle: "No countdowns match the filter",
		KeyNoMatchHint:  "Try a different filter",

		KeyConfirmDelete:       "Delete this countdown?",
		KeyConfirmClearExpired: "Remove all expired countdowns?",
		KeyConfirmClearAll:     "Remove all countdowns? This cannot be undone!",

		KeyCountdownAdded:   "Countdown added",
		KeyCountdownUpdated: "Countdown updated",
		KeyCountdownDeleted: "Countdown deleted",
		KeyClearedExpired:   "Removed %d expired countdown(s)",
		KeyClearedAll:       "All countdowns removed",
		KeyErrEmptyTitle:    "You haven't said what to remember",
		KeyErrMissingDate:   "Which day?",
		KeyErrInvalidDate:   "Date must be YYYY-MM-DD and time HH:MM",
		KeyErrTargetPast:    "Target time must be later than now",
		KeyErrPriority:      "Unknown priority",
		KeyErrNotFound:      "Countdown no longer exists",
		KeyErrGeneric:       "Something went wrong",

		KeyInterfaceSettings: "Interface",
		KeyBehaviourSettings: "Behaviour",
		KeyResortOnExpiry:    "Move countdowns to the bottom as soon as they expire",
		KeyToastSeconds:      "Notification duration (seconds)",
		KeySettingsSaved:     "Settings saved",
		KeyThemeSystem:       "System",
		KeyThemeLight:        "Light",
		KeyThemeDark:         "Dark",
	}

	// Chinese texts
	l.texts["zh"] = map[string]string{
		KeyAppTitle:   "倒计时",
		KeyHeading:    "记点啥呢？",
		KeyFooter:     "数据保存在本地，重启不会丢失",
		KeySettings:   "设置",
		KeyFile:       "文件",
		KeyView:       "视图",
		KeyLanguage:   "语言",
		KeyTheme:      "主题",
		KeyToggleDark: "切换深色模式",
		KeySave:       "保存",
		KeyCancel:     "取消",
		KeyConfirm:    "请确认",

		KeyAddCountdown:     "添加新倒计时",
		KeyEditCountdown:    "编辑倒计时",
		KeyTitleLabel:       "记啥？",
		KeyTitlePlaceholder: "要记点什么呢？",
		KeyDateLabel:        "哪天？(YYYY-MM-DD)",
		KeyTimeLabel:        "哪个点？(HH:MM)",
		KeyPriorityLabel:    "优先级",
		KeySubmit:           "就它了",
		KeyUpdate:           "更新",

		KeyPriorityHigh:   "高",
		KeyPriorityMedium: "中",
		KeyPriorityLow:    "低",

		KeyFilterTitle:   "筛选",
		KeyFilterAll:     "全部",
		KeyFilterActive:  "进行中",
		KeyFilterExpired: "已过期",
		KeyFilterHigh:    "高优先级",
		KeyFilterMedium:  "中优先级",
		KeyFilterLow:     "低优先级",
		KeyStatTotal:     "总项目数",
		KeyStatActive:    "进行中",
		KeyStatExpired:   "已过期",
		KeyClearExpired:  "清空已到达",
		KeyClearAll:      "全部清空",

		KeyTargetTime: "目标时间",
		KeyExpired:    "已过期",
		KeyDays:       "天",
		KeyHours:      "时",
		KeyMinutes:    "分",
		KeySeconds:    "秒",
		KeyEdit:       "编辑",
		KeyDelete:     "删除",

		KeyEmptyTitle:   "还没有倒计时项目",
		KeyEmptyHint:    "添加你的第一个倒计时项目开始吧！",
		KeyNoMatchTitle: "没有符合条件的倒计时项目",
		KeyNoMatchHint:  "尝试调整筛选条件",

		KeyConfirmDelete:       "确定要删除这个倒计时项目吗？",
		KeyConfirmClearExpired: "确定要清空所有已到达的倒计时项目吗？",
		KeyConfirmClearAll:     "确定要清空所有倒计时项目吗？此操作不可恢复！",

		KeyCountdownAdded:   "已添加",
		KeyCountdownUpdated: "已更新",
		KeyCountdownDeleted: "已删除",
		KeyClearedExpired:   "已清空 %d 个已到达的项目",
		KeyClearedAll:       "已全部清空",
		KeyErrEmptyTitle:    "还没输记什么呢？",
		KeyErrMissingDate:   "哪一天呢？",
		KeyErrInvalidDate:   "日期格式为 YYYY-MM-DD，时间格式为 HH:MM",
		KeyErrTargetPast:    "目标时间必须晚于当前时间",
		KeyErrPriority:      "未知的优先级",
		KeyErrNotFound:      "该倒计时已不存在",
		KeyErrGeneric:       "出错了",

		KeyInterfaceSettings: "界面",
		KeyBehaviourSettings: "行为",
		KeyResortOnExpiry:    "倒计时到达后立即移到末尾",
		KeyToastSeconds:      "通知显示时长（秒）",
		KeySettingsSaved:     "设置已保存",
		KeyThemeSystem:       "跟随系统",
		KeyThemeLight:        "浅色",
		KeyThemeDark:         "深色",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:   "Обратный отсчёт",
		KeyHeading:    "Что запомнить?",
		KeyFooter:     "Данные хранятся локально и не теряются после перезапуска",
		KeySettings:   "Настройки",
		KeyFile:       "Файл",
		KeyView:       "Вид",
		KeyLanguage:   "Язык",
		KeyTheme:      "Тема",
		KeyToggleDark: "Тёмная тема",
		KeySave:       "Сохранить",
		KeyCancel:     "Отмена",
		KeyConfirm:    "Подтвердите",

		KeyAddCountdown:     "Новый отсчёт",
		KeyEditCountdown:    "Редактирование",
		KeyTitleLabel:       "Что?",
		KeyTitlePlaceholder: "Что нужно запомнить?",
		KeyDateLabel:        "Какой день? (ГГГГ-ММ-ДД)",
		KeyTimeLabel:        "Во сколько? (ЧЧ:ММ)",
		KeyPriorityLabel:    "Приоритет",
		KeySubmit:           "Готово",
		KeyUpdate:           "Обновить",

		KeyPriorityHigh:   "Высокий",
		KeyPriorityMedium: "Средний",
		KeyPriorityLow:    "Низкий",

		KeyFilterTitle:   "Фильтр",
		KeyFilterAll:     "Все",
		KeyFilterActive:  "Активные",
		KeyFilterExpired: "Истёкшие",
		KeyFilterHigh:    "Высокий",
		KeyFilterMedium:  "Средний",
		KeyFilterLow:     "Низкий",
		KeyStatTotal:     "Всего",
		KeyStatActive:    "Активные",
		KeyStatExpired:   "Истёкшие",
		KeyClearExpired:  "Убрать истёкшие",
		KeyClearAll:      "Очистить всё",

		KeyTargetTime: "Цель",
		KeyExpired:    "Время вышло",
		KeyDays:       "дн",
		KeyHours:      "ч",
		KeyMinutes:    "мин",
		KeySeconds:    "сек",
		KeyEdit:       "Изменить",
		KeyDelete:     "Удалить",

		KeyEmptyTitle:   "Пока пусто",
		KeyEmptyHint:    "Добавьте первый отсчёт!",
		KeyNoMatchTitle: "Ничего не подходит под фильтр",
		KeyNoMatchHint:  "Попробуйте другой фильтр",

		KeyConfirmDelete:       "Удалить этот отсчёт?",
		KeyConfirmClearExpired: "Удалить все истёкшие отсчёты?",
		KeyConfirmClearAll:     "Удалить все отсчёты? Это нельзя отменить!",

		KeyCountdownAdded:   "Отсчёт добавлен",
		KeyCountdownUpdated: "Отсчёт обновлён",
		KeyCountdownDeleted: "Отсчёт удалён",
		KeyClearedExpired:   "Удалено истёкших: %d",
		KeyClearedAll:       "Все отсчёты удалены",
		KeyErrEmptyTitle:    "Не указано, что запомнить",
		KeyErrMissingDate:   "Какой день?",
		KeyErrInvalidDate:   "Дата в формате ГГГГ-ММ-ДД, время ЧЧ:ММ",
		KeyErrTargetPast:    "Время должно быть позже текущего",
		KeyErrPriority:      "Неизвестный приоритет",
		KeyErrNotFound:      "Отсчёт уже удалён",
		KeyErrGeneric:       "Что-то пошло не так",

		KeyInterfaceSettings: "Интерфейс",
		KeyBehaviourSettings: "Поведение",
		KeyResortOnExpiry:    "Сразу переносить истёкшие отсчёты вниз",
		KeyToastSeconds:      "Длительность уведомлений (сек)",
		KeySettingsSaved:     "Настройки сохранены",
		KeyThemeSystem:       "Системная",
		KeyThemeLight:        "Светлая",
		KeyThemeDark:         "Тёмная",
	}
}
