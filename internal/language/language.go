package language

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type entry struct {
	code3   string // Primary 3-letter code as used in S2T manifests
	alt3    string // ISO 639-2 bibliographic alternate (e.g. "fre" vs "fra")
	code2   string // ISO 639-1 (2-letter)
	display string // Human-readable name
}

var languages = []entry{
	{"eng", "", "en", "English"},
	{"hin", "", "hi", "Hindi"},
	{"ben", "", "bn", "Bengali"},
	{"tam", "", "ta", "Tamil"},
	{"tel", "", "te", "Telugu"},
	{"mar", "", "mr", "Marathi"},
	{"guj", "", "gu", "Gujarati"},
	{"kan", "", "kn", "Kannada"},
	{"mal", "", "ml", "Malayalam"},
	{"pan", "", "pa", "Punjabi"},
	{"urd", "", "ur", "Urdu"},
	{"ory", "", "or", "Odia"},
	{"asm", "", "as", "Assamese"},
	{"spa", "", "es", "Spanish"},
	{"fra", "fre", "fr", "French"},
	{"deu", "ger", "de", "German"},
	{"ita", "", "it", "Italian"},
	{"por", "", "pt", "Portuguese"},
	{"jpn", "", "ja", "Japanese"},
	{"kor", "", "ko", "Korean"},
	{"cmn", "zho", "zh", "Mandarin Chinese"},
	{"rus", "", "ru", "Russian"},
	{"ara", "", "ar", "Arabic"},
	{"nld", "dut", "nl", "Dutch"},
	{"pol", "", "pl", "Polish"},
	{"swe", "", "sv", "Swedish"},
	{"vie", "", "vi", "Vietnamese"},
	{"tha", "", "th", "Thai"},
	{"ind", "", "id", "Indonesian"},
	{"tur", "", "tr", "Turkish"},
}

// Index maps built at init time.
var (
	byCode3 map[string]*entry
	byCode2 map[string]*entry
)

func init() {
	byCode3 = make(map[string]*entry, len(languages)*2)
	byCode2 = make(map[string]*entry, len(languages))
	for i := range languages {
		e := &languages[i]
		byCode3[e.code3] = e
		if e.alt3 != "" {
			byCode3[e.alt3] = e
		}
		byCode2[e.code2] = e
	}
}

func lookup(code string) *entry {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return nil
	}
	if e, ok := byCode3[code]; ok {
		return e
	}
	if e, ok := byCode2[code]; ok {
		return e
	}
	return nil
}

// Normalize converts a recognized language code to its primary 3-letter form.
// Unrecognized codes pass through lowercased so uncommon languages still reach
// the manifest untouched.
func Normalize(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if e := lookup(code); e != nil {
		return e.code3
	}
	return code
}

// IsKnown reports whether the code maps to a table entry.
func IsKnown(code string) bool {
	return lookup(code) != nil
}

var displayCaser = cases.Title(language.English)

// DisplayName returns a human-readable language name for any recognized code.
// Unrecognized codes are title-cased as-is; empty input reads "Unknown".
func DisplayName(code string) string {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return "Unknown"
	}
	if e := lookup(trimmed); e != nil {
		return e.display
	}
	return displayCaser.String(strings.ToLower(trimmed))
}

// PairLabel renders a source/target language pair for presentation.
func PairLabel(source, target string) string {
	return DisplayName(source) + " -> " + DisplayName(target)
}
