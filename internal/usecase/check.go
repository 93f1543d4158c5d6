package usecase

import (
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/3-lines-studio/multipage/internal/core"
	"github.com/3-lines-studio/multipage/internal/htmlref"
)

type Problem struct {
	Route   string
	File    string
	Message string
}

func (p Problem) String() string {
	return fmt.Sprintf("%s (%s): %s", p.Route, p.File, p.Message)
}

type CheckOutput struct {
	Checked  int
	Problems []Problem
}

// CheckService verifies that the files a page configuration points at exist.
type CheckService struct {
	registry *core.Registry
	fs       FileSystem
	root     string
	logger   *slog.Logger
}

func NewCheckService(registry *core.Registry, fs FileSystem, root string, logger *slog.Logger) *CheckService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CheckService{
		registry: registry,
		fs:       fs,
		root:     core.SlashPath(root),
		logger:   logger,
	}
}

// Check reports missing entry files, missing templates for script entries
// and local script or link references of HTML entries that point nowhere.
func (s *CheckService) Check() (CheckOutput, error) {
	var out CheckOutput

	for _, page := range s.registry.Pages() {
		out.Checked++
		entry := core.JoinRoot(s.root, page.File)

		if !s.fs.FileExists(entry) {
			out.Problems = append(out.Problems, Problem{Route: page.Path, File: page.File, Message: "entry file does not exist"})
			continue
		}

		if !core.IsHTMLPath(page.File) {
			template := s.registry.TemplateFor(page)
			switch {
			case template == "":
				out.Problems = append(out.Problems, Problem{Route: page.Path, File: page.File, Message: "template required for non-HTML entry"})
			case !s.fs.FileExists(core.JoinRoot(s.root, template)):
				out.Problems = append(out.Problems, Problem{Route: page.Path, File: template, Message: "template does not exist"})
			}
			continue
		}

		data, err := s.fs.ReadFile(entry)
		if err != nil {
			return out, fmt.Errorf("read %s: %w", entry, err)
		}
		refs, err := htmlref.References(string(data))
		if err != nil {
			return out, &core.TransformError{File: entry, Err: err}
		}
		for _, ref := range refs {
			target := referencePath(path.Dir(entry), ref.Value)
			if target == "" || s.fs.FileExists(target) {
				continue
			}
			out.Problems = append(out.Problems, Problem{
				Route:   page.Path,
				File:    page.File,
				Message: fmt.Sprintf("<%s %s=%q> points to a missing file", ref.Tag, ref.Attr, ref.Value),
			})
		}
	}

	s.logger.Debug("checked pages", "pages", out.Checked, "problems", len(out.Problems))
	return out, nil
}

func referencePath(dir, value string) string {
	value = strings.TrimSpace(value)
	if i := strings.IndexAny(value, "?#"); i >= 0 {
		value = value[:i]
	}
	if value == "" {
		return ""
	}
	return path.Join(dir, core.SlashPath(value))
}
