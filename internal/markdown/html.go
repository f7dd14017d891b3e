package markdown

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Heading is an h1-h6 element of rendered content.
type Heading struct {
	Level int    `json:"level"`
	ID    string `json:"id,omitempty"`
	Text  string `json:"text"`
}

var headingLevels = map[atom.Atom]int{
	atom.H1: 1, atom.H2: 2, atom.H3: 3, atom.H4: 4, atom.H5: 5, atom.H6: 6,
}

// Headings lists the headings of an HTML fragment in document order.
func Headings(fragment string) []Heading {
	z := html.NewTokenizer(strings.NewReader(fragment))
	var out []Heading
	var current *Heading
	var text strings.Builder
	for {
		switch z.Next() {
		case html.ErrorToken:
			return out
		case html.StartTagToken:
			tok := z.Token()
			if level, ok := headingLevels[tok.DataAtom]; ok {
				current = &Heading{Level: level}
				for _, a := range tok.Attr {
					if a.Key == "id" {
						current.ID = a.Val
					}
				}
				text.Reset()
			}
		case html.TextToken:
			if current != nil {
				text.Write(z.Text())
			}
		case html.EndTagToken:
			tok := z.Token()
			if _, ok := headingLevels[tok.DataAtom]; ok && current != nil {
				current.Text = collapseSpace(text.String())
				out = append(out, *current)
				current = nil
			}
		}
	}
}

var blockAtoms = map[atom.Atom]bool{
	atom.P: true, atom.Div: true, atom.Br: true, atom.Li: true, atom.Tr: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
	atom.Blockquote: true, atom.Pre: true, atom.Table: true, atom.Ul: true, atom.Ol: true,
	atom.Section: true, atom.Article: true, atom.Hr: true,
}

var blankLines = regexp.MustCompile(`\n{3,}`)

// PlainText strips tags, keeping paragraph breaks.
func PlainText(fragment string) string {
	z := html.NewTokenizer(strings.NewReader(fragment))
	var b strings.Builder
	skip := 0
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.TrimSpace(blankLines.ReplaceAllString(b.String(), "\n\n"))
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			if tok.DataAtom == atom.Script || tok.DataAtom == atom.Style {
				skip++
				continue
			}
			if tok.DataAtom == atom.Li {
				b.WriteString("\n- ")
			} else if blockAtoms[tok.DataAtom] {
				b.WriteString("\n")
			}
		case html.EndTagToken:
			tok := z.Token()
			if (tok.DataAtom == atom.Script || tok.DataAtom == atom.Style) && skip > 0 {
				skip--
				continue
			}
			if blockAtoms[tok.DataAtom] && tok.DataAtom != atom.Li {
				b.WriteString("\n\n")
			}
		case html.TextToken:
			if skip == 0 {
				b.WriteString(collapseSpace(string(z.Text())))
			}
		}
	}
}

// Title returns the <title> of an HTML page.
func Title(page string) string {
	z := html.NewTokenizer(strings.NewReader(page))
	inTitle := false
	for {
		switch z.Next() {
		case html.ErrorToken:
			return ""
		case html.StartTagToken:
			if tok := z.Token(); tok.DataAtom == atom.Title {
				inTitle = true
			}
		case html.TextToken:
			if inTitle {
				return strings.TrimSpace(collapseSpace(string(z.Text())))
			}
		case html.EndTagToken:
			inTitle = false
		}
	}
}

// FromHTML converts an HTML fragment to markdown. It covers the elements
// found in feed items and article bodies; unknown elements keep their text.
func FromHTML(fragment string) (string, error) {
	nodes, err := html.ParseFragment(strings.NewReader(fragment), &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body})
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}
	var b strings.Builder
	for _, n := range nodes {
		writeMarkdown(&b, n, 0)
	}
	return strings.TrimSpace(blankLines.ReplaceAllString(b.String(), "\n\n")), nil
}

func writeMarkdown(b *strings.Builder, n *html.Node, depth int) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(collapseSpace(n.Data))
		return
	case html.ElementNode:
	default:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			writeMarkdown(b, c, depth)
		}
		return
	}

	children := func() {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			writeMarkdown(b, c, depth)
		}
	}

	switch n.DataAtom {
	case atom.Script, atom.Style, atom.Iframe, atom.Noscript:
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		b.WriteString("\n\n" + strings.Repeat("#", headingLevels[n.DataAtom]) + " ")
		b.WriteString(strings.TrimSpace(innerText(n)))
		b.WriteString("\n\n")
	case atom.P, atom.Div, atom.Section, atom.Article:
		b.WriteString("\n\n")
		children()
		b.WriteString("\n\n")
	case atom.Br:
		b.WriteString("  \n")
	case atom.Hr:
		b.WriteString("\n\n---\n\n")
	case atom.Strong, atom.B:
		b.WriteString("**" + strings.TrimSpace(innerText(n)) + "**")
	case atom.Em, atom.I:
		b.WriteString("_" + strings.TrimSpace(innerText(n)) + "_")
	case atom.Code:
		b.WriteString("`" + innerText(n) + "`")
	case atom.Pre:
		b.WriteString("\n\n```\n" + strings.Trim(innerText(n), "\n") + "\n```\n\n")
	case atom.A:
		text := strings.TrimSpace(innerText(n))
		href := attr(n, "href")
		if href == "" || text == "" {
			b.WriteString(text)
		} else {
			fmt.Fprintf(b, "[%s](%s)", text, href)
		}
	case atom.Img:
		if src := attr(n, "src"); src != "" {
			fmt.Fprintf(b, "![%s](%s)", attr(n, "alt"), src)
		}
	case atom.Ul, atom.Ol:
		b.WriteString("\n\n")
		i := 1
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode || c.DataAtom != atom.Li {
				continue
			}
			b.WriteString(strings.Repeat("  ", depth))
			if n.DataAtom == atom.Ol {
				fmt.Fprintf(b, "%d. ", i)
			} else {
				b.WriteString("- ")
			}
			var item strings.Builder
			for cc := c.FirstChild; cc != nil; cc = cc.NextSibling {
				writeMarkdown(&item, cc, depth+1)
			}
			b.WriteString(strings.TrimSpace(item.String()))
			b.WriteString("\n")
			i++
		}
		b.WriteString("\n")
	case atom.Blockquote:
		var inner strings.Builder
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			writeMarkdown(&inner, c, depth)
		}
		b.WriteString("\n\n")
		for _, line := range strings.Split(strings.TrimSpace(blankLines.ReplaceAllString(inner.String(), "\n\n")), "\n") {
			b.WriteString("> " + line + "\n")
		}
		b.WriteString("\n")
	default:
		children()
	}
}

func innerText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

var spaceRun = regexp.MustCompile(`\s+`)

func collapseSpace(s string) string {
	return spaceRun.ReplaceAllString(s, " ")
}
