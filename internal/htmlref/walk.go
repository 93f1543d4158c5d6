package htmlref

import (
	"golang.org/x/net/html"
)

// NodeKind classifies parsed nodes. Container kinds are walked into, leaf
// kinds are visited only.
type NodeKind int

const (
	KindDocument NodeKind = iota
	KindFragment
	KindElement
	KindText
	KindComment
	KindDoctype
	KindRaw
)

func (k NodeKind) String() string {
	switch k {
	case KindDocument:
		return "document"
	case KindFragment:
		return "fragment"
	case KindElement:
		return "element"
	case KindText:
		return "text"
	case KindComment:
		return "comment"
	case KindDoctype:
		return "doctype"
	default:
		return "raw"
	}
}

func (k NodeKind) IsContainer() bool {
	return k == KindDocument || k == KindFragment || k == KindElement
}

const fragmentData = "#document-fragment"

func newFragment(nodes []*html.Node) *html.Node {
	root := &html.Node{Type: html.DocumentNode, Data: fragmentData}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	return root
}

func KindOf(n *html.Node) NodeKind {
	switch n.Type {
	case html.DocumentNode:
		if n.Data == fragmentData {
			return KindFragment
		}
		return KindDocument
	case html.ElementNode:
		return KindElement
	case html.TextNode:
		return KindText
	case html.CommentNode:
		return KindComment
	case html.DoctypeNode:
		return KindDoctype
	default:
		return KindRaw
	}
}

// Walk visits n and its descendants in pre-order, each node once.
func Walk(n *html.Node, visit func(*html.Node, NodeKind)) {
	kind := KindOf(n)
	visit(n, kind)
	if !kind.IsContainer() {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		Walk(c, visit)
	}
}
