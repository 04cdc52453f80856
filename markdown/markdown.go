// Package markdown renders the small Markdown subset used in authored
// content (project descriptions, FAQ answers) as templ components:
// paragraphs, bullet lists, bold, italic and links.
package markdown

import (
	"context"
	"html"
	"io"
	"net/url"
	"regexp"
	"strings"

	"github.com/a-h/templ"
)

var (
	reBold   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reItalic = regexp.MustCompile(`\*([^*]+)\*`)
	reLink   = regexp.MustCompile(`\[(.*?)\]\((.*?)\)`)
	reBullet = regexp.MustCompile(`^[-*]\s+`)
)

// Block returns a component rendering md as paragraphs and bullet lists.
// Blank lines separate paragraphs.
func Block(md string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, RenderBlock(md))
		return err
	})
}

// Paragraphs renders each entry as its own paragraph.
func Paragraphs(paras []string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		for _, p := range paras {
			if p = strings.TrimSpace(p); p != "" {
				b.WriteString("<p>" + FormatInline(p) + "</p>")
			}
		}
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// RenderBlock returns the HTML for md.
func RenderBlock(md string) string {
	var b strings.Builder
	var para []string
	inList := false

	flushPara := func() {
		if len(para) > 0 {
			b.WriteString("<p>" + FormatInline(strings.Join(para, " ")) + "</p>")
			para = nil
		}
	}
	closeList := func() {
		if inList {
			b.WriteString("</ul>")
			inList = false
		}
	}

	for _, line := range strings.Split(md, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			flushPara()
			closeList()
		case reBullet.MatchString(line):
			flushPara()
			if !inList {
				b.WriteString("<ul>")
				inList = true
			}
			b.WriteString("<li>" + FormatInline(reBullet.ReplaceAllString(line, "")) + "</li>")
		default:
			closeList()
			para = append(para, line)
		}
	}
	flushPara()
	closeList()
	return b.String()
}

// FormatInline escapes s and applies bold, italic and link formatting.
func FormatInline(s string) string {
	escaped := html.EscapeString(s)
	escaped = reLink.ReplaceAllStringFunc(escaped, func(m string) string {
		match := reLink.FindStringSubmatch(m)
		href := SafeURL(match[2])
		if href == "" {
			return match[1]
		}
		attrs := ""
		if strings.HasPrefix(href, "http") {
			attrs = ` target="_blank" rel="noopener noreferrer"`
		}
		return `<a href="` + href + `"` + attrs + `>` + match[1] + `</a>`
	})
	// Emphasis must not touch href attributes.
	return applyOutsideTags(escaped, func(seg string) string {
		seg = reBold.ReplaceAllString(seg, "<strong>$1</strong>")
		return reItalic.ReplaceAllString(seg, "<em>$1</em>")
	})
}

func applyOutsideTags(s string, fn func(string) string) string {
	var buf strings.Builder
	for len(s) > 0 {
		lt := strings.Index(s, "<")
		if lt < 0 {
			buf.WriteString(fn(s))
			break
		}
		if lt > 0 {
			buf.WriteString(fn(s[:lt]))
		}
		gt := strings.Index(s[lt:], ">")
		if gt < 0 {
			buf.WriteString(s[lt:])
			break
		}
		buf.WriteString(s[lt : lt+gt+1])
		s = s[lt+gt+1:]
	}
	return buf.String()
}

// SafeURL validates and sanitizes a URL for use in an href attribute.
// Relative paths, fragments, and http(s), mailto and tel URLs are allowed.
func SafeURL(raw string) string {
	val := strings.TrimSpace(html.UnescapeString(raw))
	if val == "" {
		return ""
	}
	if strings.HasPrefix(val, "/") || strings.HasPrefix(val, "#") {
		return html.EscapeString(val)
	}
	parsed, err := url.Parse(val)
	if err != nil || parsed.Scheme == "" {
		return ""
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https", "mailto", "tel":
		return html.EscapeString(val)
	default:
		return ""
	}
}
