package domain

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// StringKey identifies one user-facing text.
type StringKey string

const (
	SkillName        StringKey = "SKILL_NAME"
	WelcomeMessage   StringKey = "WELCOME_MSG"
	GoodbyeMessage   StringKey = "GOODBYE_MSG"
	HelloMessage     StringKey = "HELLO_MSG"
	HelpMessage      StringKey = "HELP_MSG"
	ErrorMessage     StringKey = "ERROR_MSG"
	ReflectorMessage StringKey = "REFLECTOR_MSG"
	FallbackMessage  StringKey = "FALLBACK_MSG"
)

// StringKeys lists every key a locale must define.
func StringKeys() []StringKey {
	return []StringKey{
		SkillName,
		WelcomeMessage,
		GoodbyeMessage,
		HelloMessage,
		HelpMessage,
		ErrorMessage,
		ReflectorMessage,
		FallbackMessage,
	}
}

// StringTable maps keys to templates for one locale.
type StringTable map[StringKey]string

// Missing returns the keys from StringKeys absent in t.
func (t StringTable) Missing() []StringKey {
	var missing []StringKey
	for _, k := range StringKeys() {
		if _, ok := t[k]; !ok {
			missing = append(missing, k)
		}
	}
	return missing
}

// LocaleTable maps canonical locale ids to their string table.
type LocaleTable map[string]StringTable

// Validate enforces that every locale defines every key.
func (lt LocaleTable) Validate() error {
	for _, locale := range lt.Locales() {
		if missing := lt[locale].Missing(); len(missing) > 0 {
			names := make([]string, len(missing))
			for i, k := range missing {
				names[i] = string(k)
			}
			return fmt.Errorf("%w: %s lacks %s", ErrIncompleteLocale, locale, strings.Join(names, ", "))
		}
	}
	return nil
}

// Locales returns the locale ids, sorted.
func (lt LocaleTable) Locales() []string {
	out := make([]string, 0, len(lt))
	for locale := range lt {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// CanonicalLocale normalizes a locale id to its BCP 47 form ("es_ES" -> "es-ES").
// Ids that do not parse are returned trimmed but otherwise untouched.
func CanonicalLocale(id string) string {
	id = strings.TrimSpace(strings.ReplaceAll(id, "_", "-"))
	tag, err := language.Parse(id)
	if err != nil {
		return id
	}
	return tag.String()
}

// Localizer resolves text for the locale selected at construction. A
// Localizer belongs to a single request and is never shared.
type Localizer struct {
	locale string
	table  StringTable
}

// NewLocalizer selects localeID from table.
func NewLocalizer(localeID string, table LocaleTable) (*Localizer, error) {
	locale := CanonicalLocale(localeID)
	st, ok := table[locale]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, localeID)
	}
	return &Localizer{locale: locale, table: st}, nil
}

// Locale returns the canonical locale id in use.
func (l *Localizer) Locale() string {
	return l.locale
}

// Resolve looks key up and fills in params.
func (l *Localizer) Resolve(key StringKey, params map[string]any) (string, error) {
	tmpl, ok := l.table[key]
	if !ok {
		return "", fmt.Errorf("%w: %s (locale %s)", ErrUnknownKey, key, l.locale)
	}
	if len(params) == 0 {
		return tmpl, nil
	}
	return Substitute(tmpl, params), nil
}
