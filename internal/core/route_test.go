package core

import "testing"

func testRules() RuleTable {
	return BuildRules([]Page{
		{Path: "/", File: "index.html"},
		{Path: "/about", File: "src/about.js", Template: "/templates/about.html"},
		{Path: "blog/", File: "/pages/blog/index.html"},
		{Path: "/about", File: "src/shadowed.js"},
	}, "/templates/base.html")
}

func TestBuildRules(t *testing.T) {
	rules := testRules()

	want := []RouteRule{
		{Path: "/", Target: "index.html", Template: "/templates/base.html", Output: "index.html"},
		{Path: "/about", Target: "src/about.js", Template: "/templates/about.html", Output: "about.html"},
		{Path: "/blog", Target: "/pages/blog/index.html", Template: "/templates/base.html", Output: "blog.html"},
		{Path: "/about", Target: "src/shadowed.js", Template: "/templates/base.html", Output: "about.html"},
	}

	if len(rules) != len(want) {
		t.Fatalf("BuildRules() len = %d, want %d", len(rules), len(want))
	}
	for i := range want {
		if rules[i] != want[i] {
			t.Errorf("rules[%d] = %+v, want %+v", i, rules[i], want[i])
		}
	}
}

func TestBuildRulesDefaultTemplate(t *testing.T) {
	rules := BuildRules([]Page{{Path: "/x", File: "x.js"}}, "")
	if rules[0].Template != DefaultTemplate {
		t.Errorf("Template = %q, want %q", rules[0].Template, DefaultTemplate)
	}
}

func TestRuleTableMatch(t *testing.T) {
	rules := testRules()

	tests := []struct {
		name       string
		request    string
		wantOK     bool
		wantTarget string
	}{
		{name: "root", request: "/", wantOK: true, wantTarget: "index.html"},
		{name: "exact", request: "/about", wantOK: true, wantTarget: "src/about.js"},
		{name: "first match wins", request: "/about", wantOK: true, wantTarget: "src/about.js"},
		{name: "extension stripped", request: "/about.html", wantOK: true, wantTarget: "src/about.js"},
		{name: "query stripped", request: "/about?ref=nav", wantOK: true, wantTarget: "src/about.js"},
		{name: "extension and query stripped", request: "/about.html?ref=nav", wantOK: true, wantTarget: "src/about.js"},
		{name: "normalized rule path", request: "/blog", wantOK: true, wantTarget: "/pages/blog/index.html"},
		{name: "anchored: trailing slash", request: "/about/", wantOK: false},
		{name: "anchored: trailing slash on html page", request: "/blog/", wantOK: false},
		{name: "anchored: extra segment", request: "/about/extra", wantOK: false},
		{name: "anchored: prefix", request: "/abo", wantOK: false},
		{name: "anchored: suffix", request: "/xabout", wantOK: false},
		{name: "asset", request: "/src/main.js", wantOK: false},
		{name: "dotted directory keeps segment", request: "/v1.2/about", wantOK: false},
		{name: "case sensitive", request: "/About", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, ok := rules.Match(tt.request)
			if ok != tt.wantOK {
				t.Fatalf("Match(%q) ok = %v, want %v", tt.request, ok, tt.wantOK)
			}
			if ok && rule.Target != tt.wantTarget {
				t.Errorf("Match(%q) target = %q, want %q", tt.request, rule.Target, tt.wantTarget)
			}
		})
	}
}

func TestRuleTableMatchMetacharacters(t *testing.T) {
	rules := BuildRules([]Page{{Path: "/a+b", File: "plus.js"}, {Path: "/c(d)", File: "paren.js"}}, "")

	if _, ok := rules.Match("/aab"); ok {
		t.Error("route /a+b must not behave like a pattern")
	}
	if rule, ok := rules.Match("/a+b"); !ok || rule.Target != "plus.js" {
		t.Errorf("Match(/a+b) = %+v, %v", rule, ok)
	}
	if rule, ok := rules.Match("/c(d)"); !ok || rule.Target != "paren.js" {
		t.Errorf("Match(/c(d)) = %+v, %v", rule, ok)
	}
}

func TestRequestRoute(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/", "/"},
		{"", "/"},
		{"/about.html", "/about"},
		{"/about?x=1", "/about"},
		{"/about#top", "/about"},
		{"/docs/guide.md", "/docs/guide"},
		{"/.well-known", "/.well-known"},
		{"/index.html", "/index"},
		{"/about/", "/about/"},
		{"about", "/about"},
	}

	for _, tt := range tests {
		if got := RequestRoute(tt.in); got != tt.want {
			t.Errorf("RequestRoute(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
