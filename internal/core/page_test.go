package core

import (
	"errors"
	"strings"
	"testing"
)

func TestValidatePages(t *testing.T) {
	tests := []struct {
		name     string
		pages    []Page
		wantErr  bool
		wantPage string
	}{
		{
			name:  "valid pages",
			pages: []Page{{Path: "/", File: "index.html"}, {Path: "/about", File: "src/about.js"}},
		},
		{
			name:  "empty list is valid",
			pages: []Page{},
		},
		{
			name:    "nil list",
			pages:   nil,
			wantErr: true,
		},
		{
			name:     "missing file",
			pages:    []Page{{Path: "/x"}},
			wantErr:  true,
			wantPage: `pages[0] {"path":"/x"}`,
		},
		{
			name:     "missing path",
			pages:    []Page{{File: "/x.js"}},
			wantErr:  true,
			wantPage: `pages[0] {"file":"/x.js"}`,
		},
		{
			name:     "second entry invalid",
			pages:    []Page{{Path: "/", File: "index.html"}, {Path: "/b"}},
			wantErr:  true,
			wantPage: `pages[1] {"path":"/b"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePages(tt.pages)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidatePages() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}

			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("ValidatePages() error type = %T, want *ConfigError", err)
			}
			if cfgErr.Page != tt.wantPage {
				t.Errorf("ConfigError.Page = %q, want %q", cfgErr.Page, tt.wantPage)
			}
			if tt.wantPage != "" {
				msg := err.Error()
				if !strings.Contains(msg, "path") || !strings.Contains(msg, "file") {
					t.Errorf("error %q should name both required fields", msg)
				}
			}
		})
	}
}

func TestCanonicalOutputPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/", "index.html"},
		{"/about", "about.html"},
		{"/blog/post", "blog/post.html"},
		{"about", "about.html"},
		{"/about/", "about.html"},
	}

	for _, tt := range tests {
		if got := CanonicalOutputPath(Page{Path: tt.path, File: "x.js"}); got != tt.want {
			t.Errorf("CanonicalOutputPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestEffectiveTemplate(t *testing.T) {
	tests := []struct {
		name   string
		page   Page
		global string
		want   string
	}{
		{name: "page template wins", page: Page{Template: "/page.html"}, global: "/global.html", want: "/page.html"},
		{name: "global template", page: Page{}, global: "/global.html", want: "/global.html"},
		{name: "default", page: Page{}, want: DefaultTemplate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EffectiveTemplate(tt.page, tt.global); got != tt.want {
				t.Errorf("EffectiveTemplate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewRegistry(t *testing.T) {
	t.Run("normalizes routes", func(t *testing.T) {
		r, err := NewRegistry([]Page{{Path: "about/", File: "src/about.js"}}, "")
		if err != nil {
			t.Fatalf("NewRegistry() error = %v", err)
		}
		if got := r.Pages()[0].Path; got != "/about" {
			t.Errorf("route = %q, want /about", got)
		}
	})

	t.Run("rejects colliding routes", func(t *testing.T) {
		_, err := NewRegistry([]Page{
			{Path: "/a", File: "a.js"},
			{Path: "/a/", File: "a2.js"},
		}, "")
		var cfgErr *ConfigError
		if !errors.As(err, &cfgErr) {
			t.Fatalf("NewRegistry() error = %v, want *ConfigError", err)
		}
		if !strings.Contains(cfgErr.Page, "pages[1]") {
			t.Errorf("ConfigError.Page = %q, want it to name pages[1]", cfgErr.Page)
		}
		if !strings.Contains(cfgErr.Message, "pages[0]") {
			t.Errorf("ConfigError.Message = %q, want it to name pages[0]", cfgErr.Message)
		}
	})

	t.Run("rejects wildcard routes", func(t *testing.T) {
		_, err := NewRegistry([]Page{{Path: "/blog/*", File: "blog.js"}}, "")
		if err == nil {
			t.Fatal("NewRegistry() expected error for wildcard route")
		}
	})

	t.Run("rejects routes that requests cannot address", func(t *testing.T) {
		_, err := NewRegistry([]Page{{Path: "/v1.2", File: "v1.js"}}, "")
		var cfgErr *ConfigError
		if !errors.As(err, &cfgErr) {
			t.Fatalf("NewRegistry() error = %v, want *ConfigError", err)
		}
		if cfgErr.Message != "invalid route" {
			t.Errorf("ConfigError.Message = %q, want %q", cfgErr.Message, "invalid route")
		}
	})

	t.Run("canonical paths are unique", func(t *testing.T) {
		r, err := NewRegistry([]Page{
			{Path: "/", File: "index.html"},
			{Path: "/about", File: "src/about.js"},
			{Path: "/blog/post", File: "src/post.js"},
		}, "")
		if err != nil {
			t.Fatalf("NewRegistry() error = %v", err)
		}
		seen := map[string]bool{}
		for _, p := range r.Pages() {
			out := CanonicalOutputPath(p)
			if seen[out] {
				t.Errorf("duplicate canonical path %q", out)
			}
			seen[out] = true
		}
	})
}

func TestRegistryLookupByEntryFile(t *testing.T) {
	r, err := NewRegistry([]Page{
		{Path: "/", File: "/index.html"},
		{Path: "/about", File: `src\about.js`},
		{Path: "/about-copy", File: "src/about.js"},
	}, "")
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}

	tests := []struct {
		name     string
		query    string
		wantPath string
		wantOK   bool
	}{
		{name: "leading slash stripped", query: "index.html", wantPath: "/", wantOK: true},
		{name: "query with leading slash", query: "/index.html", wantPath: "/", wantOK: true},
		{name: "backslashes normalized and first match wins", query: "/src/about.js", wantPath: "/about", wantOK: true},
		{name: "case sensitive", query: "src/About.js", wantOK: false},
		{name: "unknown", query: "src/missing.js", wantOK: false},
		{name: "empty", query: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, ok := r.LookupByEntryFile(tt.query)
			if ok != tt.wantOK {
				t.Fatalf("LookupByEntryFile(%q) ok = %v, want %v", tt.query, ok, tt.wantOK)
			}
			if ok && page.Path != tt.wantPath {
				t.Errorf("LookupByEntryFile(%q) = %q, want %q", tt.query, page.Path, tt.wantPath)
			}
		})
	}
}
