// Package assets manages the per-locale recognition model assets:
// which locales the engine supports, which models are installed on
// disk, and downloading the ones that are not.
package assets

import (
	"sort"
	"strings"
)

// Model describes one locale's downloadable recognition model.
type Model struct {
	Locale     string
	Name       string
	URL        string
	SampleRate int
	SizeMB     int
}

// catalog is the supported-locale set, one published vosk small model
// per locale. All small models are trained for 16 kHz mono audio.
var catalog = map[string]Model{
	"en-US": {Locale: "en-US", Name: "vosk-model-small-en-us-0.15", URL: "https://alphacephei.com/vosk/models/vosk-model-small-en-us-0.15.zip", SampleRate: 16000, SizeMB: 40},
	"ja-JP": {Locale: "ja-JP", Name: "vosk-model-small-ja-0.22", URL: "https://alphacephei.com/vosk/models/vosk-model-small-ja-0.22.zip", SampleRate: 16000, SizeMB: 48},
	"de-DE": {Locale: "de-DE", Name: "vosk-model-small-de-0.15", URL: "https://alphacephei.com/vosk/models/vosk-model-small-de-0.15.zip", SampleRate: 16000, SizeMB: 45},
	"fr-FR": {Locale: "fr-FR", Name: "vosk-model-small-fr-0.22", URL: "https://alphacephei.com/vosk/models/vosk-model-small-fr-0.22.zip", SampleRate: 16000, SizeMB: 41},
	"es-ES": {Locale: "es-ES", Name: "vosk-model-small-es-0.42", URL: "https://alphacephei.com/vosk/models/vosk-model-small-es-0.42.zip", SampleRate: 16000, SizeMB: 39},
	"ru-RU": {Locale: "ru-RU", Name: "vosk-model-small-ru-0.22", URL: "https://alphacephei.com/vosk/models/vosk-model-small-ru-0.22.zip", SampleRate: 16000, SizeMB: 45},
	"zh-CN": {Locale: "zh-CN", Name: "vosk-model-small-cn-0.22", URL: "https://alphacephei.com/vosk/models/vosk-model-small-cn-0.22.zip", SampleRate: 16000, SizeMB: 42},
	"it-IT": {Locale: "it-IT", Name: "vosk-model-small-it-0.22", URL: "https://alphacephei.com/vosk/models/vosk-model-small-it-0.22.zip", SampleRate: 16000, SizeMB: 48},
	"pt-PT": {Locale: "pt-PT", Name: "vosk-model-small-pt-0.3", URL: "https://alphacephei.com/vosk/models/vosk-model-small-pt-0.3.zip", SampleRate: 16000, SizeMB: 31},
	"ko-KR": {Locale: "ko-KR", Name: "vosk-model-small-ko-0.22", URL: "https://alphacephei.com/vosk/models/vosk-model-small-ko-0.22.zip", SampleRate: 16000, SizeMB: 82},
	"hi-IN": {Locale: "hi-IN", Name: "vosk-model-small-hi-0.22", URL: "https://alphacephei.com/vosk/models/vosk-model-small-hi-0.22.zip", SampleRate: 16000, SizeMB: 42},
	"nl-NL": {Locale: "nl-NL", Name: "vosk-model-small-nl-0.22", URL: "https://alphacephei.com/vosk/models/vosk-model-small-nl-0.22.zip", SampleRate: 16000, SizeMB: 39},
}

// NormalizeLocale canonicalizes a BCP 47 tag to ll-RR form, accepting
// underscore separators and mixed case.
func NormalizeLocale(locale string) string {
	locale = strings.ReplaceAll(locale, "_", "-")
	parts := strings.SplitN(locale, "-", 2)
	if len(parts) == 1 {
		return strings.ToLower(parts[0])
	}
	return strings.ToLower(parts[0]) + "-" + strings.ToUpper(parts[1])
}

// Lookup returns the catalog entry for a locale.
func Lookup(locale string) (Model, bool) {
	model, ok := catalog[NormalizeLocale(locale)]
	return model, ok
}

// SupportedLocales returns the catalog's locales in sorted order.
func SupportedLocales() []string {
	locales := make([]string, 0, len(catalog))
	for locale := range catalog {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}
