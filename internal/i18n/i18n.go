// Package i18n translates user-facing names and status lines.
//
// Messages are keyed by their English text, gettext style, so an untranslated
// message prints as English.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/san-kum/sortviz/internal/registry"
)

var supported = []language.Tag{
	language.English,
	language.French,
}

var matcher = language.NewMatcher(supported)

var french = map[string]string{
	"all":            "tous",
	"Insertion Sort": "Tri par insertion",
	"Shell Sort":     "Tri de Shell",
	"Selection Sort": "Tri par sélection",
	"Merge Sort":     "Tri fusion",
	"Quick Sort":     "Tri rapide",
	"Heap Sort":      "Tri par tas",
	"Bubble Sort":    "Tri à bulles",
	"Comb Sort":      "Tri à peigne",
	"Monkey Sort":    "Tri du singe",

	"random":        "aléatoire",
	"reversed":      "inversé",
	"few-unique":    "peu de valeurs",
	"almost-sorted": "presque trié",

	"playing":  "lecture",
	"paused":   "pause",
	"finished": "terminé",

	"frame %d/%d":        "image %d/%d",
	"%d comparisons":     "%d comparaisons",
	"%d writes":          "%d écritures",
	"%d inversions left": "%d inversions restantes",
	"did not terminate":  "n'a pas terminé",
}

var cat = func() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, msg := range french {
		if err := b.SetString(language.English, key, key); err != nil {
			panic(err)
		}
		if err := b.SetString(language.French, key, msg); err != nil {
			panic(err)
		}
	}
	return b
}()

// Parse matches lang against the supported languages. Anything unknown or
// malformed yields English.
func Parse(lang string) language.Tag {
	tag, err := language.Parse(lang)
	if err != nil {
		return language.English
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return language.English
	}
	return supported[idx]
}

func Supported() []language.Tag {
	return append([]language.Tag(nil), supported...)
}

func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(cat))
}

// Title returns the localized title for a registry key. Unknown keys come
// back unchanged.
func Title(tag language.Tag, key string) string {
	if key == registry.AllKey {
		return Printer(tag).Sprintf(registry.AllKey)
	}
	e, err := registry.LookupKey(key)
	if err != nil {
		return key
	}
	return Printer(tag).Sprintf(e.Title)
}

// Label is Title followed by the complexity annotation.
func Label(tag language.Tag, key string) string {
	e, err := registry.LookupKey(key)
	if err != nil {
		return Title(tag, key)
	}
	return Title(tag, key) + " (" + e.Complexity + ")"
}

func Dataset(tag language.Tag, name string) string {
	return Printer(tag).Sprintf(name)
}
