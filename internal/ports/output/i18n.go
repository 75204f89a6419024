package output

// T is the i18n contract for every message the API returns.
type T interface {
	// T renders the message identified by key for the given locale.
	// data fills template placeholders and may be nil.
	T(locale, key string, data map[string]any) string
	// Locale picks the best supported locale from client preferences, in
	// priority order (an explicit tag, then an Accept-Language header value).
	Locale(preferences ...string) string
}
