package cli

import (
	"fmt"
	"strings"
	"time"
)

type colors interface {
	Green(text string) string
	Yellow(text string) string
	Gray(text string) string
}

type printer interface {
	colors
	PrintSuccess(msg string, args ...any)
	PrintWarning(msg string, args ...any)
	PrintStep(emoji, msg string, args ...any)
	PrintFile(path string)
}

type RelocatedFile struct {
	Route string
	From  string
	To    string
}

// RelocateReport summarizes one post-build relocation run.
type RelocateReport struct {
	out       printer
	outputDir string
	startTime time.Time
	moved     []RelocatedFile
	inPlace   []string
	unmanaged []string
	pruned    []string
}

func NewRelocateReport(out printer, outputDir string) *RelocateReport {
	return &RelocateReport{
		out:       out,
		outputDir: outputDir,
		startTime: time.Now(),
	}
}

func (r *RelocateReport) AddMoved(route, from, to string) {
	r.moved = append(r.moved, RelocatedFile{Route: route, From: from, To: to})
}

func (r *RelocateReport) SetInPlace(paths []string)   { r.inPlace = paths }
func (r *RelocateReport) SetUnmanaged(paths []string) { r.unmanaged = paths }
func (r *RelocateReport) SetPruned(paths []string)    { r.pruned = paths }

func (r *RelocateReport) Render() {
	duration := time.Since(r.startTime)

	if len(r.moved) == 0 {
		r.out.PrintSuccess("All %d pages already at their canonical paths", len(r.inPlace))
	} else {
		r.out.PrintSuccess("Relocated %d pages", len(r.moved))
		for _, m := range r.moved {
			r.out.PrintFile(fmt.Sprintf("%s  %s → %s", r.out.Gray(m.Route), r.rel(m.From), r.rel(m.To)))
		}
	}

	if len(r.unmanaged) > 0 {
		r.out.PrintWarning("%d HTML files do not belong to a page", len(r.unmanaged))
		for _, p := range r.unmanaged {
			r.out.PrintFile(p)
		}
	}

	if len(r.pruned) > 0 {
		r.out.PrintStep("", "Removed %d empty directories", len(r.pruned))
	}

	r.out.PrintSuccess("Done in %s", formatDuration(duration))
	if r.outputDir != "" {
		r.out.PrintStep("", "%s", r.out.Gray("Output: "+r.outputDir))
	}
}

func (r *RelocateReport) rel(p string) string {
	if r.outputDir == "" {
		return p
	}
	return strings.TrimPrefix(strings.TrimPrefix(p, r.outputDir), "/")
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", float64(d)/float64(time.Millisecond))
	}
	return fmt.Sprintf("%.1fs", float64(d)/float64(time.Second))
}
