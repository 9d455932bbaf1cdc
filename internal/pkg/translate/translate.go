// Package translate resolves UI text against static per-language
// dictionaries. The fallback chain is: exact phrase, then word-by-word with
// trailing punctuation preserved, then the original text unchanged. No
// grammar, no pluralization.
package translate

import "strings"

// Request carries one translation lookup.
type Request struct {
	Text           string `json:"text" binding:"required"`
	TargetLanguage string `json:"targetLanguage" binding:"required"`
	SourceLanguage string `json:"sourceLanguage"`
}

// Response mirrors the lookup result.
type Response struct {
	TranslatedText string `json:"translatedText"`
	SourceLanguage string `json:"sourceLanguage,omitempty"`
}

// Engine holds the closed set of language dictionaries.
type Engine struct {
	dictionaries map[string]map[string]string
}

func NewEngine() *Engine {
	return &Engine{dictionaries: dictionaries}
}

// SupportedLanguage reports whether code belongs to the closed language set.
func (e *Engine) SupportedLanguage(code string) bool {
	if code == "en" {
		return true
	}
	_, ok := e.dictionaries[code]
	return ok
}

// Translate resolves text for the target language. Unresolvable text comes
// back unchanged rather than failing.
func (e *Engine) Translate(req Request) Response {
	source := req.SourceLanguage
	if source == "" {
		source = "en"
	}
	if req.TargetLanguage == "en" || req.TargetLanguage == source {
		return Response{TranslatedText: req.Text, SourceLanguage: source}
	}

	dict, ok := e.dictionaries[req.TargetLanguage]
	if !ok {
		return Response{TranslatedText: req.Text, SourceLanguage: source}
	}

	if exact, ok := dict[req.Text]; ok {
		return Response{TranslatedText: exact, SourceLanguage: source}
	}

	if translated, ok := translateWords(req.Text, dict); ok {
		return Response{TranslatedText: translated, SourceLanguage: source}
	}

	return Response{TranslatedText: req.Text, SourceLanguage: source}
}

// translateWords substitutes each whitespace-separated word independently.
// Reports false when no word resolved, so the caller can fall back to the
// original text.
func translateWords(text string, dict map[string]string) (string, bool) {
	words := strings.Fields(text)
	out := make([]string, len(words))
	resolved := false
	for i, word := range words {
		core := strings.TrimRight(word, ".,:;!?")
		punct := word[len(core):]
		if hit, ok := dict[core]; ok {
			out[i] = hit + punct
			resolved = true
		} else {
			out[i] = word
		}
	}
	if !resolved {
		return "", false
	}
	return strings.Join(out, " "), true
}
