package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sort"
	"strconv"
)

// ErrInvalidSetting is returned for unknown namespaces, keys or values.
var ErrInvalidSetting = errors.New("invalid setting")

type NotificationSettings struct {
	PushNotifications  bool `json:"pushNotifications"`
	EmailNotifications bool `json:"emailNotifications"`
	CourseReminders    bool `json:"courseReminders"`
	AchievementAlerts  bool `json:"achievementAlerts"`
	SoundEnabled       bool `json:"soundEnabled"`
	VibrationEnabled   bool `json:"vibrationEnabled"`
}

type PrivacySettings struct {
	ProfileVisibility bool `json:"profileVisibility"`
	ShowActivity      bool `json:"showActivity"`
	AllowMessages     bool `json:"allowMessages"`
	ShowEmail         bool `json:"showEmail"`
	ShowPhone         bool `json:"showPhone"`
}

type PreferenceSettings struct {
	AutoPlayVideos  bool   `json:"autoPlayVideos"`
	DownloadQuality string `json:"downloadQuality"`
	Language        string `json:"language"`
	FontSize        string `json:"fontSize"`
	Theme           string `json:"theme"`
}

type AppSettings struct {
	CacheEnabled bool   `json:"cacheEnabled"`
	DataUsage    string `json:"dataUsage"`
	AutoDownload bool   `json:"autoDownload"`
	CellularData bool   `json:"cellularData"`
}

// Settings is the persisted user configuration, one struct per namespace.
type Settings struct {
	Notifications NotificationSettings `json:"notifications"`
	Privacy       PrivacySettings      `json:"privacy"`
	Preferences   PreferenceSettings   `json:"preferences"`
	App           AppSettings          `json:"app"`
}

// DefaultSettings returns the factory configuration.
func DefaultSettings() Settings {
	return Settings{
		Notifications: NotificationSettings{
			PushNotifications:  true,
			EmailNotifications: true,
			CourseReminders:    true,
			AchievementAlerts:  true,
			SoundEnabled:       true,
			VibrationEnabled:   true,
		},
		Privacy: PrivacySettings{
			ProfileVisibility: true,
			ShowActivity:      true,
			AllowMessages:     true,
		},
		Preferences: PreferenceSettings{
			DownloadQuality: "high",
			Language:        "English",
			FontSize:        "medium",
			Theme:           "light",
		},
		App: AppSettings{
			CacheEnabled: true,
			DataUsage:    "moderate",
			CellularData: true,
		},
	}
}

// DecodeSettings merges a persisted blob over the defaults key by key, so
// options missing from an older blob keep their default values.
func DecodeSettings(data []byte) (Settings, error) {
	s := DefaultSettings()
	if err := json.Unmarshal(data, &s); err != nil {
		return DefaultSettings(), err
	}
	return s, nil
}

type enumOption struct {
	field   func(*Settings) *string
	allowed []string
}

var boolOptions = map[string]map[string]func(*Settings) *bool{
	"notifications": {
		"pushNotifications":  func(s *Settings) *bool { return &s.Notifications.PushNotifications },
		"emailNotifications": func(s *Settings) *bool { return &s.Notifications.EmailNotifications },
		"courseReminders":    func(s *Settings) *bool { return &s.Notifications.CourseReminders },
		"achievementAlerts":  func(s *Settings) *bool { return &s.Notifications.AchievementAlerts },
		"soundEnabled":       func(s *Settings) *bool { return &s.Notifications.SoundEnabled },
		"vibrationEnabled":   func(s *Settings) *bool { return &s.Notifications.VibrationEnabled },
	},
	"privacy": {
		"profileVisibility": func(s *Settings) *bool { return &s.Privacy.ProfileVisibility },
		"showActivity":      func(s *Settings) *bool { return &s.Privacy.ShowActivity },
		"allowMessages":     func(s *Settings) *bool { return &s.Privacy.AllowMessages },
		"showEmail":         func(s *Settings) *bool { return &s.Privacy.ShowEmail },
		"showPhone":         func(s *Settings) *bool { return &s.Privacy.ShowPhone },
	},
	"preferences": {
		"autoPlayVideos": func(s *Settings) *bool { return &s.Preferences.AutoPlayVideos },
	},
	"app": {
		"cacheEnabled": func(s *Settings) *bool { return &s.App.CacheEnabled },
		"autoDownload": func(s *Settings) *bool { return &s.App.AutoDownload },
		"cellularData": func(s *Settings) *bool { return &s.App.CellularData },
	},
}

var enumOptions = map[string]map[string]enumOption{
	"preferences": {
		"downloadQuality": {func(s *Settings) *string { return &s.Preferences.DownloadQuality }, []string{"low", "medium", "high"}},
		"language":        {func(s *Settings) *string { return &s.Preferences.Language }, []string{"English", "Spanish", "French", "German"}},
		"fontSize":        {func(s *Settings) *string { return &s.Preferences.FontSize }, []string{"small", "medium", "large"}},
		"theme":           {func(s *Settings) *string { return &s.Preferences.Theme }, []string{"light", "dark"}},
	},
	"app": {
		"dataUsage": {func(s *Settings) *string { return &s.App.DataUsage }, []string{"low", "moderate", "high"}},
	},
}

// Toggle flips a boolean option and returns the updated copy.
func (s Settings) Toggle(namespace, key string) (Settings, error) {
	f, ok := boolOptions[namespace][key]
	if !ok {
		return s, fmt.Errorf("%w: no boolean option %s.%s", ErrInvalidSetting, namespace, key)
	}
	p := f(&s)
	*p = !*p
	return s, nil
}

// SetOption assigns an enumerated option and returns the updated copy.
func (s Settings) SetOption(namespace, key, value string) (Settings, error) {
	opt, ok := enumOptions[namespace][key]
	if !ok {
		return s, fmt.Errorf("%w: no option %s.%s", ErrInvalidSetting, namespace, key)
	}
	if !slices.Contains(opt.allowed, value) {
		return s, fmt.Errorf("%w: %q is not one of %v", ErrInvalidSetting, value, opt.allowed)
	}
	*opt.field(&s) = value
	return s, nil
}

// OptionValues lists the allowed values of an enumerated option.
func OptionValues(namespace, key string) ([]string, bool) {
	opt, ok := enumOptions[namespace][key]
	if !ok {
		return nil, false
	}
	return slices.Clone(opt.allowed), true
}

// SettingKeys returns "namespace.key" for every known option, sorted.
func SettingKeys() []string {
	var keys []string
	for ns, m := range boolOptions {
		for k := range m {
			keys = append(keys, ns+"."+k)
		}
	}
	for ns, m := range enumOptions {
		for k := range m {
			keys = append(keys, ns+"."+k)
		}
	}
	sort.Strings(keys)
	return keys
}

// Value returns an option formatted for display.
func (s Settings) Value(namespace, key string) (string, bool) {
	if f, ok := boolOptions[namespace][key]; ok {
		return strconv.FormatBool(*f(&s)), true
	}
	if opt, ok := enumOptions[namespace][key]; ok {
		return *opt.field(&s), true
	}
	return "", false
}
