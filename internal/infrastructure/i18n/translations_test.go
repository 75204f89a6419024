package i18n

import "testing"

func TestTranslator_RendersTemplate(t *testing.T) {
	tr := NewTranslator("en")

	got := tr.T("en", "signup_success", map[string]any{"Email": "x@mergington.edu", "Activity": "Chess Club"})

	if got != "Signed up x@mergington.edu for Chess Club" {
		t.Errorf("unexpected message: %q", got)
	}
}

func TestTranslator_French(t *testing.T) {
	tr := NewTranslator("en")

	if got := tr.T("fr", "error_activity_not_found", nil); got != "Activité introuvable" {
		t.Errorf("unexpected french message: %q", got)
	}
}

func TestTranslator_UnknownKey_ReturnsKey(t *testing.T) {
	tr := NewTranslator("en")

	if got := tr.T("en", "no_such_key", nil); got != "no_such_key" {
		t.Errorf("expected key fallback, got %q", got)
	}
}

func TestTranslator_UnknownLocale_FallsBackToDefault(t *testing.T) {
	tr := NewTranslator("en")

	if got := tr.T("de", "logout_success", nil); got != "Logged out" {
		t.Errorf("expected english fallback, got %q", got)
	}
}

func TestTranslator_Locale(t *testing.T) {
	tr := NewTranslator("en")

	cases := []struct {
		prefs []string
		want  string
	}{
		{nil, "en"},
		{[]string{"", "fr-FR,fr;q=0.9,en;q=0.8"}, "fr"},
		{[]string{"fr", "en-US"}, "fr"},
		{[]string{"de-DE"}, "en"},
	}
	for _, c := range cases {
		if got := tr.Locale(c.prefs...); got != c.want {
			t.Errorf("Locale(%q) = %q, want %q", c.prefs, got, c.want)
		}
	}
}
