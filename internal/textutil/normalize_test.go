package textutil

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello, World!", "hello world"},
		{"It's 3 o'clock.", "its 3 oclock"},
		{"<i>Stylized</i>", "istylizedi"},
		{"déjà vu", "dj vu"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestStripSpaces(t *testing.T) {
	if got := StripSpaces("hello world again"); got != "helloworldagain" {
		t.Fatalf("unexpected result: %q", got)
	}
}

func TestWordCount(t *testing.T) {
	if got := WordCount("  one two   three "); got != 3 {
		t.Fatalf("expected 3 words, got %d", got)
	}
	if got := WordCount(""); got != 0 {
		t.Fatalf("expected 0 words, got %d", got)
	}
}
