package usecase

import (
	"fmt"
	"log/slog"
	"path"
	"sort"

	"github.com/3-lines-studio/multipage/internal/core"
	"github.com/3-lines-studio/multipage/internal/htmlref"
)

// EmittedFile is one file produced by a build. FileName is relative to the
// output directory. When Source is empty the file is read from disk.
type EmittedFile struct {
	FileName string
	Source   string
}

type Move struct {
	Route string
	From  string
	To    string
}

type RelocateInput struct {
	OutDir string
	Files  []EmittedFile
}

type RelocateOutput struct {
	Moved     []Move
	InPlace   []string
	Unmanaged []string
	Pruned    []string
}

// RelocateService moves emitted page HTML to its canonical output path.
type RelocateService struct {
	registry *core.Registry
	fs       FileSystem
	logger   *slog.Logger
}

func NewRelocateService(registry *core.Registry, fs FileSystem, logger *slog.Logger) *RelocateService {
	if logger == nil {
		logger = slog.Default()
	}
	return &RelocateService{
		registry: registry,
		fs:       fs,
		logger:   logger,
	}
}

type plannedMove struct {
	move Move
	doc  string
}

// Relocate processes every emitted HTML file, then prunes directories left
// empty under the output directory. Every source is read and rewritten
// before anything is written, and an old path is only removed when no page
// was moved onto it, so a page emitted where another page belongs is never
// lost. It stops at the first error.
func (s *RelocateService) Relocate(input RelocateInput) (RelocateOutput, error) {
	var out RelocateOutput
	outDir := path.Clean(core.SlashPath(input.OutDir))

	var plan []plannedMove
	for _, file := range input.Files {
		if !core.IsHTMLPath(file.FileName) {
			continue
		}

		page, ok := s.registry.LookupByEntryFile(file.FileName)
		if !ok {
			out.Unmanaged = append(out.Unmanaged, file.FileName)
			continue
		}

		oldPath := core.JoinRoot(outDir, file.FileName)
		newPath := core.JoinRoot(outDir, core.CanonicalOutputPath(page))
		if oldPath == newPath {
			out.InPlace = append(out.InPlace, oldPath)
			continue
		}

		doc, err := s.rewrite(file, oldPath, newPath)
		if err != nil {
			return out, err
		}
		plan = append(plan, plannedMove{
			move: Move{Route: page.Path, From: oldPath, To: newPath},
			doc:  doc,
		})
	}

	targets := make(map[string]struct{}, len(plan))
	for _, m := range plan {
		if err := s.fs.MkdirAll(path.Dir(m.move.To), 0755); err != nil {
			return out, fmt.Errorf("create %s: %w", path.Dir(m.move.To), err)
		}
		if err := writeFile(s.fs, m.move.To, []byte(m.doc)); err != nil {
			return out, err
		}
		targets[m.move.To] = struct{}{}
	}

	for _, m := range plan {
		if _, taken := targets[m.move.From]; !taken {
			if err := s.fs.Remove(m.move.From); err != nil {
				return out, fmt.Errorf("remove %s: %w", m.move.From, err)
			}
		}
		out.Moved = append(out.Moved, m.move)
		s.logger.Info("relocated page", "route", m.move.Route, "from", m.move.From, "to", m.move.To)
	}

	pruned, err := PruneEmptyDirs(s.fs, outDir)
	if err != nil {
		return out, err
	}
	out.Pruned = pruned
	return out, nil
}

func (s *RelocateService) rewrite(file EmittedFile, oldPath, newPath string) (string, error) {
	source := file.Source
	if source == "" {
		var err error
		if source, err = readSource(s.fs, oldPath); err != nil {
			return "", err
		}
	}

	doc, err := htmlref.RewriteReferences(source, oldPath, newPath)
	if err != nil {
		return "", &core.TransformError{File: oldPath, Err: err}
	}
	return doc, nil
}

// writeFile replaces name with data. An existing file is removed first, so a
// crash between the two calls leaves no file behind.
func writeFile(fsys FileSystem, name string, data []byte) error {
	if fsys.FileExists(name) {
		if err := fsys.Remove(name); err != nil {
			return fmt.Errorf("remove %s: %w", name, err)
		}
	}
	if err := fsys.WriteFile(name, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// PruneEmptyDirs removes every directory below root that contains no files,
// children first. root itself is kept. Removed paths are returned sorted.
func PruneEmptyDirs(fsys FileSystem, root string) ([]string, error) {
	if !fsys.FileExists(root) {
		return nil, nil
	}
	var pruned []string
	if _, err := pruneDir(fsys, path.Clean(root), &pruned); err != nil {
		return pruned, err
	}
	sort.Strings(pruned)
	return pruned, nil
}

func pruneDir(fsys FileSystem, dir string, pruned *[]string) (bool, error) {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", dir, err)
	}

	remaining := len(entries)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		child := path.Join(dir, entry.Name())
		empty, err := pruneDir(fsys, child, pruned)
		if err != nil {
			return false, err
		}
		if !empty {
			continue
		}
		if err := fsys.Remove(child); err != nil {
			return false, fmt.Errorf("remove %s: %w", child, err)
		}
		*pruned = append(*pruned, child)
		remaining--
	}
	return remaining == 0, nil
}
