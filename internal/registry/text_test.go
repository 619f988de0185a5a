package registry

import (
	"strings"
	"testing"
)

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "paragraphs become lines",
			in:   "<p>First.</p><p>Second.</p>",
			want: "First.\nSecond.",
		},
		{
			name: "script and style dropped",
			in:   "<p>Keep.</p><script>alert(1)</script><style>.x{}</style>",
			want: "Keep.",
		},
		{
			name: "list items separated",
			in:   "<ul><li>one</li><li>two</li></ul>",
			want: "one\ntwo",
		},
		{
			name: "inline markup flattened",
			in:   "<p>The <b>MIT</b> license.</p>",
			want: "The MIT license.",
		},
		{
			name: "plain text passes through",
			in:   "just words",
			want: "just words",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripHTML(tt.in); got != tt.want {
				t.Errorf("StripHTML(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStripHTML_CollapsesBlankRuns(t *testing.T) {
	in := "<p>One.</p><br><br><br><p>Two.</p>"
	got := StripHTML(in)

	if strings.Contains(got, "\n\n\n") {
		t.Errorf("blank runs not collapsed: %q", got)
	}
}

func TestNormalizeWhitespace(t *testing.T) {
	in := "  leading\n\n\n\nmiddle   \n\n"
	want := "leading\n\nmiddle"

	if got := normalizeWhitespace(in); got != want {
		t.Errorf("normalizeWhitespace = %q, want %q", got, want)
	}
}
