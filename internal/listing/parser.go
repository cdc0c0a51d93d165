// Package listing extracts child entries from auto-generated HTML
// directory listing pages.
package listing

import (
	"io"
	"net/url"
	"strings"

	"golang.org/x/net/html"

	"github.com/Roneo412/httpsync/internal/domain"
)

// Parse reads an HTML listing page and returns one entry per anchor
// tag, in document order. Hrefs are resolved against pageURL and
// anchors whose visible text starts with ".." (parent-directory links)
// are dropped.
func Parse(r io.Reader, pageURL string) ([]domain.Entry, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, err
	}

	// html.Parse never fails on malformed markup, only on reader errors
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var entries []domain.Entry

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			name := textContent(n)
			if !strings.HasPrefix(name, "..") {
				if abs := resolveHref(base, attr(n, "href")); abs != "" {
					entries = append(entries, domain.Entry{
						Name:  name,
						URL:   abs,
						IsDir: strings.HasSuffix(name, "/"),
					})
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return entries, nil
}

// textContent concatenates all text nodes under n
func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// attr returns the value of the named attribute, or ""
func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// resolveHref turns an href into an absolute URL, dropping fragments
func resolveHref(base *url.URL, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	res := base.ResolveReference(u)
	res.Fragment = ""
	return res.String()
}
