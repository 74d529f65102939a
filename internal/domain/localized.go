package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Lang identifies one of the content languages stored on localized fields.
type Lang string

const (
	LangUA Lang = "ua"
	LangEN Lang = "en"
)

// DefaultFallbackOrder is the language order tried when the requested
// language is absent from a localized record.
var DefaultFallbackOrder = []Lang{LangUA, LangEN}

// LocalizedText is a content field that is stored on the wire either as a
// plain string (legacy documents) or as a per-language record with optional
// "ua" and "en" entries. The zero value resolves to empty text.
type LocalizedText struct {
	plain   string
	isPlain bool
	values  map[Lang]string
}

// PlainText wraps a legacy plain-string field value.
func PlainText(text string) LocalizedText {
	return LocalizedText{plain: text, isPlain: true}
}

// ByLang builds a per-language record. Entries are kept verbatim: a present
// empty string is a deliberate blank, not an absent key.
func ByLang(values map[Lang]string) LocalizedText {
	if values == nil {
		return LocalizedText{values: map[Lang]string{}}
	}
	copied := make(map[Lang]string, len(values))
	for lang, text := range values {
		copied[lang] = text
	}
	return LocalizedText{values: copied}
}

// IsZero reports whether the field carries no representation at all.
func (t LocalizedText) IsZero() bool {
	return !t.isPlain && t.values == nil
}

// IsPlain reports whether the field uses the legacy plain-string shape.
func (t LocalizedText) IsPlain() bool {
	return t.isPlain
}

// Get returns the entry for lang and whether the key is present. Legacy
// plain values report present for every language.
func (t LocalizedText) Get(lang Lang) (string, bool) {
	if t.isPlain {
		return t.plain, true
	}
	if t.values == nil {
		return "", false
	}
	text, ok := t.values[lang]
	return text, ok
}

// Resolution is the outcome of resolving a localized field for a language.
// UsedLang is empty when no representation was available.
type Resolution struct {
	Text     string
	UsedLang Lang
}

// IsFallback reports whether another language's content was substituted for
// the requested one. The UI surfaces this as a fallback-language badge.
func (r Resolution) IsFallback(requested Lang) bool {
	return r.UsedLang != "" && r.UsedLang != requested
}

// Resolve picks the display text for lang. Legacy plain strings are returned
// verbatim and reported as already being in the requested language. Records
// try lang first, then the fallback order; an absent key falls through while
// a present-but-empty entry is accepted as-is.
func (t LocalizedText) Resolve(lang Lang, fallbackOrder ...Lang) Resolution {
	if t.isPlain {
		return Resolution{Text: t.plain, UsedLang: lang}
	}
	if t.values == nil {
		return Resolution{}
	}
	if len(fallbackOrder) == 0 {
		fallbackOrder = DefaultFallbackOrder
	}
	if text, ok := t.values[lang]; ok {
		return Resolution{Text: text, UsedLang: lang}
	}
	for _, candidate := range fallbackOrder {
		if candidate == lang {
			continue
		}
		if text, ok := t.values[candidate]; ok {
			return Resolution{Text: text, UsedLang: candidate}
		}
	}
	return Resolution{}
}

// Hydrated returns the field normalised into the full per-language record
// shape. Legacy plain strings are copied into every content language so an
// edit session never silently drops a language's content.
func (t LocalizedText) Hydrated() LocalizedText {
	values := make(map[Lang]string, 2)
	for _, lang := range DefaultFallbackOrder {
		if text, ok := t.Get(lang); ok {
			values[lang] = text
		}
	}
	return LocalizedText{values: values}
}

// Transform returns a copy with fn applied to every stored representation.
// The plain-vs-record shape is preserved.
func (t LocalizedText) Transform(fn func(string) string) LocalizedText {
	if fn == nil {
		return t
	}
	if t.isPlain {
		return LocalizedText{plain: fn(t.plain), isPlain: true}
	}
	if t.values == nil {
		return t
	}
	values := make(map[Lang]string, len(t.values))
	for lang, text := range t.values {
		values[lang] = fn(text)
	}
	return LocalizedText{values: values}
}

// Wire returns the Firestore representation: the legacy string for plain
// values, otherwise a map keyed by language code.
func (t LocalizedText) Wire() any {
	if t.isPlain {
		return t.plain
	}
	out := make(map[string]any, len(t.values))
	for lang, text := range t.values {
		out[string(lang)] = text
	}
	return out
}

// LocalizedFromWire decodes the string-or-record union read back from the
// document store. Unknown shapes decode to the zero value, never an error.
func LocalizedFromWire(raw any) LocalizedText {
	switch value := raw.(type) {
	case nil:
		return LocalizedText{}
	case string:
		return PlainText(value)
	case map[string]any:
		values := make(map[Lang]string, len(value))
		for key, entry := range value {
			lang := Lang(strings.ToLower(strings.TrimSpace(key)))
			if lang != LangUA && lang != LangEN {
				continue
			}
			if text, ok := entry.(string); ok {
				values[lang] = text
			}
		}
		return LocalizedText{values: values}
	default:
		return LocalizedText{}
	}
}

// MarshalJSON emits the same union shape the documents use on the wire.
func (t LocalizedText) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Wire())
}

// UnmarshalJSON accepts either a string or a {ua, en} object.
func (t *LocalizedText) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("localized text: %w", err)
	}
	*t = LocalizedFromWire(raw)
	return nil
}
