package markdown

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestFormatInline(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"**bold**", "<strong>bold</strong>"},
		{"*italic*", "<em>italic</em>"},
		{"**bold *italic* text**", "<strong>bold <em>italic</em> text</strong>"},
		{"a < b", "a &lt; b"},
		{"[studio](/contact/)", `<a href="/contact/">studio</a>`},
		{"[site](https://example.com)", `<a href="https://example.com" target="_blank" rel="noopener noreferrer">site</a>`},
	}
	for _, tt := range tests {
		if got := FormatInline(tt.input); got != tt.expected {
			t.Errorf("FormatInline(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestFormatInlineLeavesHrefAlone(t *testing.T) {
	got := FormatInline("[x](https://example.com/a*b*c)")
	if strings.Contains(got, "<em>") {
		t.Errorf("emphasis applied inside href: %q", got)
	}
}

func TestFormatInlineRejectsUnsafeLinks(t *testing.T) {
	got := FormatInline("[click](javascript:alert(1))")
	if strings.Contains(got, "href") {
		t.Errorf("unsafe link rendered: %q", got)
	}
}

func TestSafeURL(t *testing.T) {
	tests := map[string]string{
		"/projects/":          "/projects/",
		"#top":                "#top",
		"mailto:a@b.com":      "mailto:a@b.com",
		"tel:+15550100":       "tel:+15550100",
		"javascript:alert(1)": "",
		"data:text/html,x":    "",
		"relative/path":       "",
		"":                    "",
	}
	for in, want := range tests {
		if got := SafeURL(in); got != want {
			t.Errorf("SafeURL(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRenderBlock(t *testing.T) {
	md := "First line\ncontinues here.\n\n- one\n- **two**\n\nLast."
	want := "<p>First line continues here.</p><ul><li>one</li><li><strong>two</strong></li></ul><p>Last.</p>"
	if got := RenderBlock(md); got != want {
		t.Errorf("RenderBlock = %q, want %q", got, want)
	}
}

func TestParagraphs(t *testing.T) {
	var buf bytes.Buffer
	if err := Paragraphs([]string{"One.", "  ", "Two *words*."}).Render(context.Background(), &buf); err != nil {
		t.Fatal(err)
	}
	want := "<p>One.</p><p>Two <em>words</em>.</p>"
	if buf.String() != want {
		t.Errorf("Paragraphs = %q, want %q", buf.String(), want)
	}
}
