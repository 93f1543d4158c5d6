package core

import (
	"path"
	"strings"
)

// RouteRule answers one normalized route with a page's entry file.
type RouteRule struct {
	Path     string
	Target   string
	Template string
	Output   string
}

func (r RouteRule) TargetIsHTML() bool {
	return IsHTMLPath(r.Target)
}

// RuleTable is ordered as the pages were declared; the first matching rule
// wins.
type RuleTable []RouteRule

func BuildRules(pages []Page, template string) RuleTable {
	rules := make(RuleTable, 0, len(pages))
	for _, page := range pages {
		rules = append(rules, RouteRule{
			Path:     NormalizePath(SlashPath(page.Path)),
			Target:   page.File,
			Template: EffectiveTemplate(page, template),
			Output:   CanonicalOutputPath(page),
		})
	}
	return rules
}

func (t RuleTable) Match(requestPath string) (RouteRule, bool) {
	p := RequestRoute(requestPath)
	for _, rule := range t {
		if rule.Path == p {
			return rule, true
		}
	}
	return RouteRule{}, false
}

// RequestRoute reduces a request URL path to the route it addresses: the
// query string, fragment and the extension of the last segment are removed.
// A trailing slash is kept, so /about/ does not address the /about route;
// relative links in the page would resolve one directory too deep there.
func RequestRoute(requestPath string) string {
	if i := strings.IndexAny(requestPath, "?#"); i >= 0 {
		requestPath = requestPath[:i]
	}
	if !strings.HasPrefix(requestPath, "/") {
		requestPath = "/" + requestPath
	}

	dir, file := path.Split(requestPath)
	if ext := path.Ext(file); ext != "" && ext != file {
		file = strings.TrimSuffix(file, ext)
	}
	return dir + file
}
