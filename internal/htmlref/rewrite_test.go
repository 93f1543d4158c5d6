package htmlref

import (
	"os"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"golang.org/x/net/html"
)

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}

func referenceValues(t *testing.T, doc string) []string {
	t.Helper()
	root, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("html.Parse() error = %v", err)
	}
	var values []string
	Walk(root, func(n *html.Node, kind NodeKind) {
		if kind != KindElement {
			return
		}
		name := referenceAttr(n)
		for _, attr := range n.Attr {
			if name != "" && attr.Key == name {
				values = append(values, attr.Val)
			}
		}
	})
	return values
}

func TestRewriteReferencesRelocation(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		old  string
		new  string
		want string
	}{
		{
			name: "nested page to root",
			ref:  "../../shared/app.js",
			old:  "/pages/a/index.html",
			new:  "/index.html",
			want: "shared/app.js",
		},
		{
			name: "nested page to sibling directory",
			ref:  "../../shared/app.js",
			old:  "/pages/a/index.html",
			new:  "/nested/page.html",
			want: "../shared/app.js",
		},
		{
			name: "one level up to root",
			ref:  "../shared/app.js",
			old:  "/pages/a/index.html",
			new:  "/index.html",
			want: "pages/shared/app.js",
		},
		{
			name: "one level up to sibling directory",
			ref:  "../shared/app.js",
			old:  "/pages/a/index.html",
			new:  "/nested/page.html",
			want: "../pages/shared/app.js",
		},
		{
			name: "same-directory asset",
			ref:  "./main.js",
			old:  "/dist/pages/about/index.html",
			new:  "/dist/about.html",
			want: "pages/about/main.js",
		},
		{
			name: "query and fragment kept",
			ref:  "../../assets/app.css?v=3#dark",
			old:  "/dist/pages/a/index.html",
			new:  "/dist/a.html",
			want: "assets/app.css?v=3#dark",
		},
		{
			name: "windows separators in locations",
			ref:  "../../assets/app.js",
			old:  `C:\dist\pages\a\index.html`,
			new:  `C:\dist\a.html`,
			want: "assets/app.js",
		},
		{
			name: "relative locations",
			ref:  "../../assets/app.js",
			old:  "pages/a/index.html",
			new:  "a.html",
			want: "assets/app.js",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := `<!DOCTYPE html><html><head><script type="module" src="` + tt.ref + `"></script></head><body></body></html>`
			got, err := RewriteReferences(doc, tt.old, tt.new)
			if err != nil {
				t.Fatalf("RewriteReferences() error = %v", err)
			}
			values := referenceValues(t, got)
			if len(values) != 1 || values[0] != tt.want {
				t.Errorf("RewriteReferences() references = %v, want [%s]", values, tt.want)
			}
		})
	}
}

func TestRewriteReferencesLeavesNonLocal(t *testing.T) {
	refs := []string{
		"https://cdn.example.com/x.js",
		"http://cdn.example.com/x.css",
		"HTTPS://CDN.EXAMPLE.COM/X.JS",
		"//cdn.example.com/x.js",
		"/assets/x.js",
		"data:text/javascript,console.log(1)",
		"blob:https://example.com/1",
		"#inline",
		"",
	}

	for _, ref := range refs {
		t.Run(ref, func(t *testing.T) {
			doc := `<html><head><link rel="stylesheet" href="` + ref + `"><script src="` + ref + `"></script></head></html>`
			got, err := RewriteReferences(doc, "/dist/pages/a/index.html", "/dist/a.html")
			if err != nil {
				t.Fatalf("RewriteReferences() error = %v", err)
			}
			for _, v := range referenceValues(t, got) {
				if v != ref {
					t.Errorf("reference rewritten to %q, want %q", v, ref)
				}
			}
		})
	}
}

func TestRewriteReferencesIdentity(t *testing.T) {
	doc := "<!doctype html>\n<html>\n  <head>\n    <link href=\"./style.css\" rel=stylesheet>\n" +
		"    <script src=\"./main.js\"></script>\n  </head>\n  <body></body>\n</html>\n"

	got, err := RewriteReferences(doc, "/dist/pages/a/index.html", "/dist/pages/a/other.html")
	if err != nil {
		t.Fatalf("RewriteReferences() error = %v", err)
	}
	if got != doc {
		t.Errorf("identity relocation changed the document:\n%s", got)
	}
}

func TestRewriteReferencesOnlyScriptAndLink(t *testing.T) {
	doc := `<html><head>
<SCRIPT SRC="./upper.js"></SCRIPT>
<link rel="icon" href="./favicon.ico">
<!-- <script src="./commented.js"></script> -->
</head><body>
<img src="./photo.png">
<a href="./next.html">next</a>
<template><script src="./templated.js"></script></template>
</body></html>`

	got, err := RewriteReferences(doc, "/out/pages/a/index.html", "/out/a.html")
	if err != nil {
		t.Fatalf("RewriteReferences() error = %v", err)
	}

	for _, want := range []string{
		`src="pages/a/upper.js"`,
		`href="pages/a/favicon.ico"`,
		`<!-- <script src="./commented.js"></script> -->`,
		`<img src="./photo.png"/>`,
		`<a href="./next.html">`,
		`src="pages/a/templated.js"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestRewriteReferencesFragment(t *testing.T) {
	doc := `<script type="module" src="./main.js"></script>`

	got, err := RewriteReferences(doc, "/out/pages/a/index.html", "/out/a.html")
	if err != nil {
		t.Fatalf("RewriteReferences() error = %v", err)
	}

	want := `<script type="module" src="pages/a/main.js"></script>`
	if got != want {
		t.Errorf("RewriteReferences() = %q, want %q", got, want)
	}
}

func TestRewriteReferencesSnapshot(t *testing.T) {
	doc := `<!doctype html>
<html lang="en">
  <head>
    <meta charset="UTF-8">
    <title>About</title>
    <link rel="stylesheet" href="../../assets/about.css">
    <link rel="preconnect" href="https://fonts.example.com">
    <script type="module" crossorigin src="../../assets/about.js?v=1"></script>
  </head>
  <body>
    <div id="app"></div>
    <script src="/assets/analytics.js"></script>
  </body>
</html>
`

	got, err := RewriteReferences(doc, "/dist/src/pages/about/index.html", "/dist/about.html")
	if err != nil {
		t.Fatalf("RewriteReferences() error = %v", err)
	}
	snaps.MatchSnapshot(t, got)
}

func TestIsLocalReference(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"main.js", true},
		{"./main.js", true},
		{"../shared/app.js", true},
		{"assets/app.css?v=1", true},
		{"/main.js", false},
		{"//cdn.example.com/a.js", false},
		{"https://cdn.example.com/a.js", false},
		{"mailto:someone@example.com", false},
		{"data:,x", false},
		{"  ", false},
	}

	for _, tt := range tests {
		if got := IsLocalReference(tt.value); got != tt.want {
			t.Errorf("IsLocalReference(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestReferences(t *testing.T) {
	doc := `<html><head><link rel="stylesheet" href="a.css"><script src="https://x.test/a.js"></script><script src="../b.js"></script></head></html>`

	refs, err := References(doc)
	if err != nil {
		t.Fatalf("References() error = %v", err)
	}

	want := []Reference{
		{Tag: "link", Attr: "href", Value: "a.css"},
		{Tag: "script", Attr: "src", Value: "../b.js"},
	}
	if len(refs) != len(want) {
		t.Fatalf("References() = %+v, want %+v", refs, want)
	}
	for i := range want {
		if refs[i] != want[i] {
			t.Errorf("References()[%d] = %+v, want %+v", i, refs[i], want[i])
		}
	}
}
