package datetime

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// DefaultLanguage is used when no catalogue matches the requested one.
const DefaultLanguage = "en"

// Labels translates weekday and month abbreviations.
type Labels struct {
	Lang      string
	Languages []string // catalogues found, sorted
	localizer *i18n.Localizer
}

// NewLabels loads the embedded catalogues and selects lang, falling back to English.
func NewLabels(lang string) (*Labels, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("read locales: %w", err)
	}
	var langs []string
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
			continue
		}
		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+name); err != nil {
			return nil, fmt.Errorf("load locale %s: %w", name, err)
		}
		langs = append(langs, strings.TrimSuffix(strings.TrimPrefix(name, "active."), ".json"))
	}
	sort.Strings(langs)
	if lang == "" {
		lang = DefaultLanguage
	}
	return &Labels{
		Lang:      lang,
		Languages: langs,
		localizer: i18n.NewLocalizer(bundle, lang, DefaultLanguage),
	}, nil
}

// Supported reports whether a catalogue exists for the selected language.
func (l *Labels) Supported() bool {
	base := strings.ToLower(strings.SplitN(strings.ReplaceAll(l.Lang, "_", "-"), "-", 2)[0])
	for _, code := range l.Languages {
		if code == base {
			return true
		}
	}
	return false
}

func (l *Labels) translate(id, fallback string) string {
	msg, err := l.localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil || msg == "" {
		return fallback
	}
	return msg
}

func (l *Labels) Weekday(d time.Weekday) string {
	en := d.String()[:3]
	return l.translate("Weekday"+en, en)
}

func (l *Labels) Month(m time.Month) string {
	en := m.String()[:3]
	return l.translate("Month"+en, en)
}

// Date formats t as "<weekday> <dd> <month>", e.g. "Mon 19 Oct".
func (l *Labels) Date(t time.Time) string {
	return fmt.Sprintf("%s %02d %s", l.Weekday(t.Weekday()), t.Day(), l.Month(t.Month()))
}

// Clock formats t as 24h "HH:MM".
func Clock(t time.Time) string {
	return t.Format("15:04")
}
