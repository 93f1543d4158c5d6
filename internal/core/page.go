package core

import (
	"encoding/json"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const DefaultTemplate = "/index.html"

// Page maps a route to the entry file that serves it. Template overrides the
// configuration template and only applies when File is not an HTML document.
type Page struct {
	Path     string `json:"path,omitempty" yaml:"path,omitempty"`
	File     string `json:"file,omitempty" yaml:"file,omitempty"`
	Template string `json:"template,omitempty" yaml:"template,omitempty"`
}

type Config struct {
	Pages    []Page `json:"pages" yaml:"pages"`
	Template string `json:"template,omitempty" yaml:"template,omitempty"`
}

func (p Page) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Path, validation.Required),
		validation.Field(&p.File, validation.Required),
	)
}

func (p Page) String() string {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Sprintf("%+v", map[string]string{"path": p.Path, "file": p.File})
	}
	return string(data)
}

// ValidatePages rejects the whole list when it is missing or when any page
// lacks a path or file.
func ValidatePages(pages []Page) error {
	if pages == nil {
		return &ConfigError{Message: "invalid options.pages: pages must be a list"}
	}
	for i, page := range pages {
		if err := page.Validate(); err != nil {
			return &ConfigError{
				Page:    fmt.Sprintf("pages[%d] %s", i, page),
				Message: "page must have path and file properties",
				Err:     err,
			}
		}
	}
	return nil
}

// CanonicalOutputPath is the file, relative to the output root, where the
// page's HTML must live: "/" maps to index.html, "/about" to about.html.
func CanonicalOutputPath(page Page) string {
	route := NormalizePath(page.Path)
	if route == "/" {
		route = "/index"
	}
	return strings.TrimPrefix(route+".html", "/")
}

// EffectiveTemplate picks the page template, then the global one, then the
// default.
func EffectiveTemplate(page Page, global string) string {
	if page.Template != "" {
		return page.Template
	}
	if global != "" {
		return global
	}
	return DefaultTemplate
}
