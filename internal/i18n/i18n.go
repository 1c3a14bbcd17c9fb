// Package i18n holds the bot's Russian and Azerbaijani texts. Messages are
// printf-style formats registered in a golang.org/x/text catalog; arguments are
// positional (%[1]s) so translations may reorder them.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"daily-report-bot/internal/model"
)

const notFound = "Текст не найден"

// Translator renders catalog messages for a language, falling back to Russian.
type Translator struct {
	printers map[model.Language]*message.Printer
	known    map[model.Language]map[string]struct{}
}

var tags = map[model.Language]language.Tag{
	model.LanguageRU: language.Russian,
	model.LanguageAZ: language.Azerbaijani,
}

func New() *Translator {
	builder := catalog.NewBuilder(catalog.Fallback(language.Russian))
	t := &Translator{
		printers: make(map[model.Language]*message.Printer, len(tags)),
		known:    make(map[model.Language]map[string]struct{}, len(tags)),
	}

	for lang, tag := range tags {
		t.known[lang] = make(map[string]struct{})
		for key, msg := range texts[lang] {
			if err := builder.SetString(tag, key, msg); err != nil {
				panic("i18n: register " + key + ": " + err.Error())
			}
			t.known[lang][key] = struct{}{}
		}
	}
	for lang, tag := range tags {
		t.printers[lang] = message.NewPrinter(tag, message.Catalog(builder))
	}
	return t
}

// Text formats key in lang. Keys missing in lang are rendered in Russian.
func (t *Translator) Text(lang model.Language, key string, args ...interface{}) string {
	if _, ok := t.known[lang][key]; !ok {
		lang = model.LanguageRU
	}
	if _, ok := t.known[lang][key]; !ok {
		return notFound
	}
	return t.printers[lang].Sprintf(key, args...)
}

// Has reports whether key is defined for lang itself, without fallback.
func (t *Translator) Has(lang model.Language, key string) bool {
	_, ok := t.known[lang][key]
	return ok
}

// MenuLabels returns every reply-menu label in every language. Names equal to one
// of them are rejected at registration.
func (t *Translator) MenuLabels() []string {
	var labels []string
	for _, lang := range []model.Language{model.LanguageRU, model.LanguageAZ} {
		for _, key := range []string{MenuProfile, MenuReport, MenuHelp, MenuAdmin} {
			labels = append(labels, t.Text(lang, key))
		}
	}
	return labels
}

// MenuKey maps a reply-menu label in any language back to its key.
func (t *Translator) MenuKey(label string) (string, bool) {
	for _, lang := range []model.Language{model.LanguageRU, model.LanguageAZ} {
		for _, key := range []string{MenuProfile, MenuReport, MenuHelp, MenuAdmin} {
			if t.Text(lang, key) == label {
				return key, true
			}
		}
	}
	return "", false
}
