package script

import (
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// Language ties a language to the one script its rule tables are written in.
type Language struct {
	Name      string // e.g. "Hindi"; used to name rule resources
	Script    Script
	Code3     string // ISO 639-3
	Code2     string // ISO 639-1, or ISO 639-3 where no two-letter code exists
	CorpusTag string // e.g. "hin_Deva"
}

func lang(name string, s Script, code3, code2 string, tag ...string) Language {
	l := Language{Name: name, Script: s, Code3: code3, Code2: code2}
	if len(tag) > 0 {
		l.CorpusTag = tag[0]
	} else {
		l.CorpusTag = code3 + "_" + s.ID
	}
	return l
}

// The closed set of supported languages.
var (
	English       = lang("English", Latn, "eng", "en")
	Hindi         = lang("Hindi", Deva, "hin", "hi")
	Bengali       = lang("Bengali", Beng, "ben", "bn")
	Marathi       = lang("Marathi", Deva, "mar", "mr")
	Telugu        = lang("Telugu", Telu, "tel", "te")
	Tamil         = lang("Tamil", Taml, "tam", "ta")
	Gujarati      = lang("Gujarati", Gujr, "guj", "gu")
	Urdu          = lang("Urdu", Arab, "urd", "ur")
	Bhojpuri      = lang("Bhojpuri", Deva, "bho", "bho")
	Kannada       = lang("Kannada", Knda, "kan", "kn")
	Odia          = lang("Odia", Orya, "ori", "or", "ory_Orya")
	Malayalam     = lang("Malayalam", Mlym, "mal", "ml")
	Punjabi       = lang("Punjabi", Guru, "pan", "pa")
	Chhattisgarhi = lang("Chhattisgarhi", Deva, "hne", "hne")
	Assamese      = lang("Assamese", Beng, "asm", "as")
	Maithili      = lang("Maithili", Deva, "mai", "mai")
	Magahi        = lang("Magahi", Deva, "mag", "mag")
	Santali       = lang("Santali", Deva, "sat", "sat")
	Kashmiri      = lang("Kashmiri", Deva, "kas", "ks")
	Nepali        = lang("Nepali", Deva, "nep", "ne", "npi_Deva")
	Sindhi        = lang("Sindhi", Deva, "snd", "sd")
	Dogri         = lang("Dogri", Deva, "doi", "doi")
	Konkani       = lang("Konkani", Deva, "kok", "kok", "gom_Deva")
	Manipuri      = lang("Manipuri", Beng, "mni", "mni")
	Bodo          = lang("Bodo", Deva, "brx", "brx")
	Sanskrit      = lang("Sanskrit", Deva, "san", "sa")
)

// Languages lists all supported languages.
var Languages = []Language{
	English, Hindi, Bengali, Marathi, Telugu, Tamil, Gujarati, Urdu, Bhojpuri, Kannada,
	Odia, Malayalam, Punjabi, Chhattisgarhi, Assamese, Maithili, Magahi, Santali, Kashmiri,
	Nepali, Sindhi, Dogri, Konkani, Manipuri, Bodo, Sanskrit,
}

func (l Language) String() string {
	return l.Name
}

// Tag returns the BCP 47 tag of the language written in its script,
// e.g. "hi-Deva".
func (l Language) Tag() language.Tag {
	return language.Make(l.Code2 + "-" + l.Script.ID)
}

var languageMatcher = sync.OnceValue(func() language.Matcher {
	tags := make([]language.Tag, len(Languages))
	for i, l := range Languages {
		tags[i] = l.Tag()
	}
	return language.NewMatcher(tags)
})

// MatchLanguage finds a language by name, ISO 639 code, corpus tag or BCP 47
// tag. Names and codes are compared ignoring case; BCP 47 input is matched
// against the supported set and must match with at least high confidence.
//
//	MatchLanguage("Hindi"), MatchLanguage("hin"), MatchLanguage("hi-IN")
func MatchLanguage(input string) (Language, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return Language{}, false
	}
	for _, l := range Languages {
		if strings.EqualFold(l.Name, input) || strings.EqualFold(l.Code3, input) ||
			strings.EqualFold(l.Code2, input) || strings.EqualFold(l.CorpusTag, input) {
			return l, true
		}
	}
	tag, err := language.Parse(strings.ReplaceAll(input, "_", "-"))
	if err != nil {
		tracer().Debugf("cannot parse language %q: %v", input, err)
		return Language{}, false
	}
	_, index, confidence := languageMatcher().Match(tag)
	if confidence < language.High {
		return Language{}, false
	}
	return Languages[index], true
}
