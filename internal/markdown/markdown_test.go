package markdown_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"inkwell/backend/internal/markdown"
)

func TestToHTML_RendersAndSanitizes(t *testing.T) {
	out, err := markdown.ToHTML("## Brewing Basics\n\nUse **fresh** beans.\n\n<script>alert(1)</script>\n\n| a | b |\n|---|---|\n| 1 | 2 |\n")
	require.NoError(t, err)
	require.Contains(t, out, `<h2 id="brewing-basics">Brewing Basics</h2>`)
	require.Contains(t, out, "<strong>fresh</strong>")
	require.Contains(t, out, "<table>")
	require.NotContains(t, out, "<script>")
}

func TestToHTML_LinksGetNofollow(t *testing.T) {
	out, err := markdown.ToHTML("[site](https://example.com)")
	require.NoError(t, err)
	require.Contains(t, out, `rel="nofollow noopener"`)
	require.Contains(t, out, `target="_blank"`)
}

func TestHeadings(t *testing.T) {
	html, err := markdown.ToHTML("# Title\n\n## First part\n\ntext\n\n### Detail\n")
	require.NoError(t, err)

	headings := markdown.Headings(html)
	require.Equal(t, []markdown.Heading{
		{Level: 1, ID: "title", Text: "Title"},
		{Level: 2, ID: "first-part", Text: "First part"},
		{Level: 3, ID: "detail", Text: "Detail"},
	}, headings)
}

func TestPlainText(t *testing.T) {
	text := markdown.PlainText("<h2>Intro</h2><p>Hello <b>world</b>.</p><ul><li>one</li><li>two</li></ul><script>x()</script>")
	require.Equal(t, "Intro\n\nHello world.\n\n- one\n- two", text)
}

func TestTitle(t *testing.T) {
	require.Equal(t, "My Page", markdown.Title("<html><head><title> My\n Page </title></head><body>x</body></html>"))
	require.Equal(t, "", markdown.Title("<p>no title</p>"))
}

func TestFromHTML(t *testing.T) {
	md, err := markdown.FromHTML(`<h2>Why coffee</h2><p>It is <strong>great</strong> and <a href="https://example.com">cheap</a>.</p><ul><li>beans</li><li>water</li></ul><ol><li>grind</li><li>brew</li></ol><blockquote><p>quote</p></blockquote>`)
	require.NoError(t, err)
	require.Equal(t, "## Why coffee\n\nIt is **great** and [cheap](https://example.com).\n\n- beans\n- water\n\n1. grind\n2. brew\n\n> quote", md)
}

func TestDocument(t *testing.T) {
	doc := markdown.Document(`Tips & "Tricks"`, "en", "desc", "<p>x</p>")
	require.Contains(t, doc, `<html lang="en">`)
	require.Contains(t, doc, "<title>Tips &amp; \"Tricks\"</title>")
	require.Contains(t, doc, `content="desc"`)
	require.Contains(t, doc, "<p>x</p>")
}
