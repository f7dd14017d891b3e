// Package markdown renders post content to safe HTML and converts between
// HTML, markdown and plain text for export and import.
package markdown

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

var (
	renderer = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Footnote),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)

	policyOnce sync.Once
	policy     *bluemonday.Policy
)

// sanitizer allows user-generated content plus heading anchors and table alignment.
func sanitizer() *bluemonday.Policy {
	policyOnce.Do(func() {
		p := bluemonday.UGCPolicy()
		p.AllowAttrs("id").OnElements("h1", "h2", "h3", "h4", "h5", "h6", "li", "sup")
		p.RequireNoFollowOnLinks(true)
		p.AddTargetBlankToFullyQualifiedLinks(true)
		policy = p
	})
	return policy
}

// ToHTML renders markdown to sanitized HTML.
func ToHTML(md string) (string, error) {
	var buf bytes.Buffer
	if err := renderer.Convert([]byte(md), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return sanitizer().Sanitize(buf.String()), nil
}

// Sanitize cleans untrusted HTML with the same policy as rendered content.
func Sanitize(html string) string {
	return sanitizer().Sanitize(html)
}

// Document wraps rendered content in a standalone HTML page.
func Document(title, lang, description, body string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n")
	if lang != "" {
		fmt.Fprintf(&b, "<html lang=\"%s\">\n", escapeAttr(lang))
	} else {
		b.WriteString("<html>\n")
	}
	b.WriteString("<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", escapeText(title))
	if description != "" {
		fmt.Fprintf(&b, "<meta name=\"description\" content=\"%s\">\n", escapeAttr(description))
	}
	b.WriteString("</head>\n<body>\n<article>\n")
	fmt.Fprintf(&b, "<h1>%s</h1>\n", escapeText(title))
	b.WriteString(body)
	b.WriteString("</article>\n</body>\n</html>\n")
	return b.String()
}

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
)

func escapeText(s string) string { return textEscaper.Replace(s) }
func escapeAttr(s string) string { return attrEscaper.Replace(s) }
