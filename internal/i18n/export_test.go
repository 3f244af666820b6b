package i18n

import "sort"

// Keys returns every message key of the base locale, sorted.
func Keys() []string {
	keys := make([]string, 0, len(locales[BaseLocale]))
	for key := range locales[BaseLocale] {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
