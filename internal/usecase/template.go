package usecase

import (
	"errors"
	iofs "io/fs"
	"log/slog"

	"github.com/3-lines-studio/multipage/internal/core"
)

func readSource(fsys FileSystem, filename string) (string, error) {
	if !fsys.FileExists(filename) {
		return "", &core.NotFoundError{Path: filename, Err: iofs.ErrNotExist}
	}
	data, err := fsys.ReadFile(filename)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return "", &core.NotFoundError{Path: filename, Err: err}
		}
		return "", err
	}
	return string(data), nil
}

// synthesize reads the template at templatePath and injects a module script
// for src.
func synthesize(fsys FileSystem, logger *slog.Logger, templatePath, src string) (string, error) {
	template, err := readSource(fsys, templatePath)
	if err != nil {
		return "", err
	}

	doc, ok := core.InjectModuleScript(template, src)
	if !ok {
		logger.Warn("template has no closing html tag, script appended to end",
			"template", templatePath,
			"src", src,
		)
	}
	return doc, nil
}
