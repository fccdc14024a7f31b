package script

import "testing"

func TestMatchLanguage(t *testing.T) {
	tests := []struct {
		input string
		want  Language
	}{
		{"Hindi", Hindi},
		{"hindi", Hindi},
		{"hin", Hindi},
		{"kn", Kannada},
		{"ory_Orya", Odia},
		{"hin_Deva", Hindi},
		{"hi-IN", Hindi},
		{"kn-Knda", Kannada},
		{"en-US", English},
		{"sa", Sanskrit},
	}
	for _, tt := range tests {
		got, ok := MatchLanguage(tt.input)
		if !ok {
			t.Errorf("no match for %q", tt.input)
			continue
		}
		if got != tt.want {
			t.Errorf("MatchLanguage(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestMatchLanguageRejects(t *testing.T) {
	for _, input := range []string{"", "  ", "not a tag!", "ja"} {
		if l, ok := MatchLanguage(input); ok {
			t.Errorf("MatchLanguage(%q) should fail, got %s", input, l)
		}
	}
}

func TestLanguageScripts(t *testing.T) {
	if Marathi.Script != Deva || Assamese.Script != Beng || Urdu.Script != Arab {
		t.Fatalf("unexpected script assignment")
	}
	if got := Hindi.Tag().String(); got != "hi-Deva" {
		t.Errorf("Hindi tag = %s", got)
	}
}
