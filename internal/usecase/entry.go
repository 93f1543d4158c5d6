package usecase

import (
	"log/slog"
	"path"

	"github.com/3-lines-studio/multipage/internal/core"
)

type ResolveEntryInput struct {
	Specifier string
	Importer  string
	IsEntry   bool
}

type ResolveEntryOutput struct {
	ID      string
	Handled bool
}

type LoadContentOutput struct {
	Content string
	Handled bool
}

// EntryService turns non-HTML page entries into synthesized HTML documents
// for the bundler.
type EntryService struct {
	registry *core.Registry
	pending  *core.PendingDocuments
	fs       FileSystem
	root     string
	logger   *slog.Logger
}

func NewEntryService(registry *core.Registry, pending *core.PendingDocuments, fs FileSystem, root string, logger *slog.Logger) *EntryService {
	if logger == nil {
		logger = slog.Default()
	}
	return &EntryService{
		registry: registry,
		pending:  pending,
		fs:       fs,
		root:     core.SlashPath(root),
		logger:   logger,
	}
}

// ResolveEntry claims top-level, non-HTML entries that belong to a page and
// returns the id of the HTML document that will wrap them.
func (s *EntryService) ResolveEntry(input ResolveEntryInput) (ResolveEntryOutput, error) {
	if core.IsHTMLPath(input.Specifier) || input.Importer != "" || !input.IsEntry {
		return ResolveEntryOutput{}, nil
	}

	page, ok := s.registry.LookupByEntryFile(input.Specifier)
	if !ok {
		return ResolveEntryOutput{}, nil
	}

	template := s.registry.TemplateFor(page)
	if template == "" {
		return ResolveEntryOutput{}, &core.ConfigError{
			Page:    page.String(),
			Message: "template required for non-HTML entry",
		}
	}

	id := core.JoinRoot(s.root, core.CanonicalOutputPath(page))
	entry := core.RelativePath(path.Dir(id), core.JoinRoot(s.root, input.Specifier))

	s.pending.Record(id, core.PendingDocument{
		TemplatePath:   template,
		EntrySpecifier: entry,
	})
	s.logger.Debug("resolved page entry", "route", page.Path, "id", id, "entry", entry)

	return ResolveEntryOutput{ID: id, Handled: true}, nil
}

// LoadContent returns the synthesized HTML for an id produced by
// ResolveEntry.
func (s *EntryService) LoadContent(id string) (LoadContentOutput, error) {
	doc, ok := s.pending.Lookup(id)
	if !ok {
		return LoadContentOutput{}, nil
	}

	content, err := synthesize(s.fs, s.logger, core.JoinRoot(s.root, doc.TemplatePath), doc.EntrySpecifier)
	if err != nil {
		return LoadContentOutput{}, err
	}
	return LoadContentOutput{Content: content, Handled: true}, nil
}
