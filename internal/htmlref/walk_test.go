package htmlref

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

func TestWalkVisitsEachNodeOnceInPreOrder(t *testing.T) {
	root, err := html.Parse(strings.NewReader(`<!DOCTYPE html><html><head></head><body><p>hi</p><!-- c --></body></html>`))
	if err != nil {
		t.Fatalf("html.Parse() error = %v", err)
	}

	var order []string
	Walk(root, func(n *html.Node, kind NodeKind) {
		if kind == KindElement {
			order = append(order, n.Data)
			return
		}
		order = append(order, kind.String())
	})

	want := []string{"document", "doctype", "html", "head", "body", "p", "text", "comment"}
	if strings.Join(order, ",") != strings.Join(want, ",") {
		t.Errorf("Walk() order = %v, want %v", order, want)
	}
}

func TestWalkFragment(t *testing.T) {
	root, err := Parse(`<script src="a.js"></script><link href="b.css">`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if KindOf(root) != KindFragment {
		t.Fatalf("KindOf(root) = %v, want fragment", KindOf(root))
	}

	var elements []string
	Walk(root, func(n *html.Node, kind NodeKind) {
		if kind == KindElement {
			elements = append(elements, n.Data)
		}
	})
	if strings.Join(elements, ",") != "script,link" {
		t.Errorf("elements = %v, want [script link]", elements)
	}
}

func TestNodeKindIsContainer(t *testing.T) {
	tests := []struct {
		kind NodeKind
		want bool
	}{
		{KindDocument, true},
		{KindFragment, true},
		{KindElement, true},
		{KindText, false},
		{KindComment, false},
		{KindDoctype, false},
		{KindRaw, false},
	}

	for _, tt := range tests {
		if got := tt.kind.IsContainer(); got != tt.want {
			t.Errorf("%v.IsContainer() = %v, want %v", tt.kind, got, tt.want)
		}
	}
}
