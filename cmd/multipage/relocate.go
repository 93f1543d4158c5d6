package main

import (
	iofs "io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/3-lines-studio/multipage"
	"github.com/3-lines-studio/multipage/internal/adapters/cli"
	"github.com/3-lines-studio/multipage/internal/adapters/fs"
	"github.com/3-lines-studio/multipage/internal/core"
)

func relocateCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "relocate <outDir>",
		Short: "Move built page documents to their canonical paths",
		Long: `Move every built page document in outDir to the path its route
implies, rewrite its script and link references and remove directories
left empty.

Examples:
  multipage relocate dist`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadPlugin(flags, newLogger(flags.verbose))
			if err != nil {
				return err
			}

			outDir, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}
			outDir = core.SlashPath(outDir)

			files, err := emittedHTML(fs.NewOSFileSystem(), outDir)
			if err != nil {
				return err
			}

			output := cli.NewWriterOutput(cmd.OutOrStdout())
			report := cli.NewRelocateReport(output, outDir)

			result, err := p.OnBuildComplete(outDir, files)
			if err != nil {
				return err
			}

			for _, move := range result.Moved {
				report.AddMoved(move.Route, move.From, move.To)
			}
			report.SetInPlace(result.InPlace)
			report.SetUnmanaged(result.Unmanaged)
			report.SetPruned(result.Pruned)
			report.Render()
			return nil
		},
	}
}

// emittedHTML lists the HTML files under outDir relative to it.
func emittedHTML(fsys *fs.OSFileSystem, outDir string) ([]multipage.EmittedFile, error) {
	var files []multipage.EmittedFile
	err := fsys.WalkDir(outDir, func(p string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !core.IsHTMLPath(p) {
			return nil
		}
		files = append(files, multipage.EmittedFile{FileName: strings.TrimPrefix(p, outDir+"/")})
		return nil
	})
	return files, err
}
