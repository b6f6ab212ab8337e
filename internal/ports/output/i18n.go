package output

import "voiceskill/internal/domain"

// Catalog exposes the static locale table loaded at startup.
// Implementations must return a table where every locale defines every key.
type Catalog interface {
	// Locales returns the full locale table. Callers must not mutate it.
	Locales() domain.LocaleTable
}
