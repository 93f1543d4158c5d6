// Package htmlref rewrites the local script and stylesheet references of an
// HTML document when the document moves to another directory.
package htmlref

import (
	"bytes"
	"fmt"
	"net/url"
	"path"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/3-lines-studio/multipage/internal/core"
)

// Reference is a script src or link href attribute found in a document.
type Reference struct {
	Tag   string
	Attr  string
	Value string
}

func referenceAttr(n *html.Node) string {
	switch n.DataAtom {
	case atom.Script:
		return "src"
	case atom.Link:
		return "href"
	}
	return ""
}

// Parse reads doc as a full document when it carries document-level markup
// and as a body fragment otherwise, so partials are not wrapped in
// html/head/body on output.
func Parse(doc string) (*html.Node, error) {
	if !isFullDocument(doc) {
		nodes, err := html.ParseFragment(strings.NewReader(doc), &html.Node{
			Type:     html.ElementNode,
			Data:     "body",
			DataAtom: atom.Body,
		})
		if err != nil {
			return nil, err
		}
		return newFragment(nodes), nil
	}
	return html.Parse(strings.NewReader(doc))
}

func isFullDocument(doc string) bool {
	lower := strings.ToLower(doc)
	for _, marker := range []string{"<!doctype", "<html", "<head", "<body"} {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

func Render(root *html.Node) (string, error) {
	var buf bytes.Buffer
	if KindOf(root) == KindFragment {
		for c := root.FirstChild; c != nil; c = c.NextSibling {
			if err := html.Render(&buf, c); err != nil {
				return "", err
			}
		}
		return buf.String(), nil
	}
	if err := html.Render(&buf, root); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RewriteReferences re-targets every local script src and link href of doc
// so they resolve from newLocation the way they resolved from oldLocation.
// Locations are file paths of the document itself. Parsing and rendering
// normalizes markup (implied elements, attribute quoting); when both
// locations share a directory doc is returned untouched.
func RewriteReferences(doc, oldLocation, newLocation string) (string, error) {
	oldDir := locationDir(oldLocation)
	newDir := locationDir(newLocation)
	if oldDir == newDir {
		return doc, nil
	}

	root, err := Parse(doc)
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	Walk(root, func(n *html.Node, kind NodeKind) {
		if kind != KindElement {
			return
		}
		name := referenceAttr(n)
		if name == "" {
			return
		}
		for i := range n.Attr {
			if n.Attr[i].Namespace != "" || n.Attr[i].Key != name {
				continue
			}
			if rewritten, ok := RewriteURL(n.Attr[i].Val, oldDir, newDir); ok {
				n.Attr[i].Val = rewritten
			}
		}
	})

	out, err := Render(root)
	if err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	return out, nil
}

// References lists the local script and link references of doc.
func References(doc string) ([]Reference, error) {
	root, err := Parse(doc)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var refs []Reference
	Walk(root, func(n *html.Node, kind NodeKind) {
		if kind != KindElement {
			return
		}
		name := referenceAttr(n)
		if name == "" {
			return
		}
		for _, attr := range n.Attr {
			if attr.Namespace == "" && attr.Key == name && IsLocalReference(attr.Val) {
				refs = append(refs, Reference{Tag: n.Data, Attr: name, Value: attr.Val})
			}
		}
	})
	return refs, nil
}

// IsLocalReference reports whether value is a document-relative path.
// Root-absolute paths, protocol-relative and absolute URLs, data URIs and
// bare fragments are not.
func IsLocalReference(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}
	lower := strings.ToLower(value)
	for _, prefix := range []string{"/", "#", "data:", "http://", "https://"} {
		if strings.HasPrefix(lower, prefix) {
			return false
		}
	}
	if strings.HasPrefix(value, `\`) {
		return false
	}
	u, err := url.Parse(value)
	if err != nil {
		return false
	}
	return u.Scheme == "" && u.Host == ""
}

// RewriteURL recomputes value, relative to oldDir, as a path relative to
// newDir. The query string and fragment are carried over unchanged.
func RewriteURL(value, oldDir, newDir string) (string, bool) {
	if !IsLocalReference(value) {
		return value, false
	}

	value = strings.TrimSpace(value)
	p, suffix := value, ""
	if i := strings.IndexAny(value, "?#"); i >= 0 {
		p, suffix = value[:i], value[i:]
	}
	if p == "" {
		return value, false
	}

	abs := path.Join(oldDir, core.SlashPath(p))
	rel := core.RelativePath(newDir, abs)
	if strings.HasSuffix(p, "/") && rel != "." {
		rel += "/"
	}
	return rel + suffix, true
}

func locationDir(location string) string {
	location = core.SlashPath(location)
	if !strings.HasPrefix(location, "/") {
		location = "/" + location
	}
	return path.Dir(path.Clean(location))
}
