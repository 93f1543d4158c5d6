package usecase

import (
	"fmt"
	iofs "io/fs"
	"path"

	"github.com/3-lines-studio/multipage/internal/core"
	"github.com/3-lines-studio/multipage/internal/templates"
)

type InitInput struct {
	ProjectDir string
	Template   string
}

type InitOutput struct {
	Success bool
	Files   []string
	Error   error
}

// InitService scaffolds a new multi-page project from an embedded template.
type InitService struct {
	fs  FileSystem
	cli CLIOutput
}

func NewInitService(fs FileSystem, cli CLIOutput) *InitService {
	return &InitService{
		fs:  fs,
		cli: cli,
	}
}

func (s *InitService) InitProject(input InitInput) InitOutput {
	s.cli.PrintHeader("multipage init")

	projectDir := core.SlashPath(input.ProjectDir)

	if s.fs.FileExists(projectDir) {
		entries, err := s.fs.ReadDir(projectDir)
		if err != nil {
			return InitOutput{
				Success: false,
				Error:   fmt.Errorf("failed to read directory: %w", err),
			}
		}

		if len(entries) > 0 {
			return InitOutput{
				Success: false,
				Error:   fmt.Errorf("directory '%s' already exists and is not empty", input.ProjectDir),
			}
		}
	}

	templateFS, err := templates.GetTemplate(input.Template)
	if err != nil {
		return InitOutput{
			Success: false,
			Error:   fmt.Errorf("invalid template '%s': %w", input.Template, err),
		}
	}

	data := templates.TemplateData{Name: templates.DeriveProjectName(projectDir)}
	var created []string

	err = iofs.WalkDir(templateFS, ".", func(p string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		content, err := iofs.ReadFile(templateFS, p)
		if err != nil {
			return fmt.Errorf("failed to read template file %s: %w", p, err)
		}

		name, isTemplate := templates.ProcessFilename(p)
		target := path.Join(projectDir, name)

		if err := s.fs.MkdirAll(path.Dir(target), 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", path.Dir(target), err)
		}
		if err := s.fs.WriteFile(target, templates.ProcessContent(content, isTemplate, data), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", target, err)
		}

		s.cli.PrintFile(name)
		created = append(created, name)
		return nil
	})
	if err != nil {
		return InitOutput{Success: false, Files: created, Error: err}
	}

	s.cli.PrintSuccess("Created %d files", len(created))
	s.cli.PrintStep("", "cd %s && multipage dev", input.ProjectDir)
	return InitOutput{
		Success: true,
		Files:   created,
	}
}
