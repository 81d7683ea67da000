package language

import "strings"

type entry struct {
	code2   string // ISO 639-1 (2-letter)
	display string
}

var languages = map[string]entry{
	"en": {"en", "English"},
	"es": {"es", "Spanish"},
	"fr": {"fr", "French"},
	"de": {"de", "German"},
	"it": {"it", "Italian"},
	"pt": {"pt", "Portuguese"},
	"ja": {"ja", "Japanese"},
	"ko": {"ko", "Korean"},
	"zh": {"zh", "Chinese"},
	"ru": {"ru", "Russian"},
	"nl": {"nl", "Dutch"},
	"pl": {"pl", "Polish"},
	"sv": {"sv", "Swedish"},
	"da": {"da", "Danish"},
	"no": {"no", "Norwegian"},
	"fi": {"fi", "Finnish"},
}

// Primary returns the primary language subtag of a BCP-47 style tag:
// "en-US" and "en_GB" both yield "en".
func Primary(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "" {
		return ""
	}
	tag = strings.ReplaceAll(tag, "_", "-")
	primary, _, _ := strings.Cut(tag, "-")
	return primary
}

// ToISO2 converts a language tag to its ISO 639-1 code. Unrecognized
// 2-letter primary subtags pass through; anything else returns "".
func ToISO2(tag string) string {
	primary := Primary(tag)
	if primary == "" {
		return ""
	}
	if e, ok := languages[primary]; ok {
		return e.code2
	}
	if len(primary) == 2 {
		return primary
	}
	return ""
}

// DisplayName returns a human-readable name for the tag's primary language,
// or the uppercased tag when unrecognized.
func DisplayName(tag string) string {
	if strings.TrimSpace(tag) == "" {
		return "Unknown"
	}
	if e, ok := languages[Primary(tag)]; ok {
		return e.display
	}
	return strings.ToUpper(strings.TrimSpace(tag))
}
