package expand

import "testing"

func TestParseContentRender(t *testing.T) {
	args := []string{"commit", "fix typo", "main"}

	cases := []struct {
		text string
		want string
	}{
		{"plain text", "plain text"},
		{"A <1> B", "A fix typo B"},
		{"<0><1><2>", "commitfix typomain"},
		{"git commit -m <1>\n", "git commit -m fix typo\n"},
		// Out-of-range placeholders render literally.
		{"A <7> B", "A <7> B"},
		// A '<' without digits-'>' is literal text.
		{"a < b", "a < b"},
		{"a <x> b", "a <x> b"},
		{"a <1 b", "a <1 b"},
		// Trailing open bracket.
		{"a <", "a <"},
		{"a <12", "a <12"},
		// A '<' inside a broken placeholder can start a real one.
		{"a <<1> b", "a <fix typo b"},
	}

	for _, tc := range cases {
		got := ParseContent(tc.text).Render(args)
		if got != tc.want {
			t.Errorf("Render(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestContentString(t *testing.T) {
	for _, text := range []string{"plain", "A <1> B", "a < b", "<0> and <12>"} {
		if got := ParseContent(text).String(); got != text {
			t.Errorf("String() of %q = %q", text, got)
		}
	}
}

func TestContentRenderNoArgs(t *testing.T) {
	got := ParseContent("say <1>").Render(nil)
	if got != "say <1>" {
		t.Errorf("Render with no args = %q, want %q", got, "say <1>")
	}
}
