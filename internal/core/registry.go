package core

import (
	"fmt"
)

// Registry indexes a validated page list. It is immutable after NewRegistry.
type Registry struct {
	pages    []Page
	template string
	byOutput map[string]int
}

// NewRegistry validates pages, normalizes their routes and rejects pages that
// would be written to the same output file. template is the configuration
// template and may be empty.
func NewRegistry(pages []Page, template string) (*Registry, error) {
	if err := ValidatePages(pages); err != nil {
		return nil, err
	}

	r := &Registry{
		pages:    make([]Page, 0, len(pages)),
		template: template,
		byOutput: make(map[string]int, len(pages)),
	}

	for i, page := range pages {
		page.Path = NormalizePath(SlashPath(page.Path))
		if err := ValidateRoutePath(page.Path); err != nil {
			return nil, &ConfigError{
				Page:    fmt.Sprintf("pages[%d] %s", i, pages[i]),
				Message: "invalid route",
				Err:     err,
			}
		}

		out := CanonicalOutputPath(page)
		if prev, ok := r.byOutput[out]; ok {
			return nil, &ConfigError{
				Page:    fmt.Sprintf("pages[%d] %s", i, pages[i]),
				Message: fmt.Sprintf("route collides with pages[%d] %s on output %s", prev, pages[prev], out),
			}
		}
		r.byOutput[out] = i
		r.pages = append(r.pages, page)
	}

	return r, nil
}

func (r *Registry) Pages() []Page {
	out := make([]Page, len(r.pages))
	copy(out, r.pages)
	return out
}

func (r *Registry) TemplateFor(page Page) string {
	if page.Template != "" {
		return page.Template
	}
	return r.template
}

// LookupByEntryFile returns the first page whose entry file matches name
// after both are normalized.
func (r *Registry) LookupByEntryFile(name string) (Page, bool) {
	want := NormalizeEntryFile(name)
	if want == "" {
		return Page{}, false
	}
	for _, page := range r.pages {
		if NormalizeEntryFile(page.File) == want {
			return page, true
		}
	}
	return Page{}, false
}

func (r *Registry) Rules() RuleTable {
	return BuildRules(r.pages, r.template)
}
