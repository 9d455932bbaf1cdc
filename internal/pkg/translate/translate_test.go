package translate

import "testing"

func TestTranslate(t *testing.T) {
	engine := NewEngine()

	tests := []struct {
		name   string
		req    Request
		want   string
		source string
	}{
		{
			name: "exact phrase french",
			req:  Request{Text: "Dashboard", TargetLanguage: "fr"},
			want: "Tableau de bord",
		},
		{
			name: "english identity",
			req:  Request{Text: "Dashboard", TargetLanguage: "en"},
			want: "Dashboard",
		},
		{
			name: "target equals source",
			req:  Request{Text: "Tableau de bord", TargetLanguage: "fr", SourceLanguage: "fr"},
			want: "Tableau de bord",
		},
		{
			name: "unknown phrase falls back to original",
			req:  Request{Text: "Unknown Phrase", TargetLanguage: "fr"},
			want: "Unknown Phrase",
		},
		{
			name: "word by word substitution",
			req:  Request{Text: "Active Programs", TargetLanguage: "fr"},
			want: "Actif Programmes",
		},
		{
			name: "trailing punctuation preserved",
			req:  Request{Text: "Status: Completed", TargetLanguage: "de"},
			want: "Status: Abgeschlossen",
		},
		{
			name: "kinyarwanda exact phrase",
			req:  Request{Text: "Budget", TargetLanguage: "rw"},
			want: "Ingengo y'imari",
		},
		{
			name: "unsupported language passes through",
			req:  Request{Text: "Dashboard", TargetLanguage: "es"},
			want: "Dashboard",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.Translate(tt.req)
			if got.TranslatedText != tt.want {
				t.Errorf("Translate(%q, %q) = %q, want %q", tt.req.Text, tt.req.TargetLanguage, got.TranslatedText, tt.want)
			}
		})
	}
}

func TestTranslateDefaultsSourceToEnglish(t *testing.T) {
	engine := NewEngine()
	got := engine.Translate(Request{Text: "Progress", TargetLanguage: "rw"})
	if got.SourceLanguage != "en" {
		t.Errorf("source language = %q, want en", got.SourceLanguage)
	}
	if got.TranslatedText != "Iterambere" {
		t.Errorf("translated = %q, want Iterambere", got.TranslatedText)
	}
}

func TestSupportedLanguage(t *testing.T) {
	engine := NewEngine()
	for _, code := range []string{"en", "fr", "de", "rw"} {
		if !engine.SupportedLanguage(code) {
			t.Errorf("SupportedLanguage(%q) = false, want true", code)
		}
	}
	if engine.SupportedLanguage("es") {
		t.Error("SupportedLanguage(es) = true, want false")
	}
}
