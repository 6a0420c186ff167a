package progress

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Reporter receives one call per file written by the static export.
type Reporter interface {
	Start(total int)
	Written(name string, size int)
	Finish(dir string)
}

// NewReporter returns a LogReporter when running under CI, where a redrawn
// bar only clutters the build log, and a TerminalReporter otherwise.
func NewReporter(logger *slog.Logger) Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &LogReporter{Logger: logger}
	}
	return &TerminalReporter{Out: os.Stderr}
}

// TerminalReporter draws a progress bar of pages written.
type TerminalReporter struct {
	Out   io.Writer
	bar   *progressbar.ProgressBar
	bytes int
}

func (r *TerminalReporter) Start(total int) {
	r.bytes = 0
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(r.Out),
		progressbar.OptionSetDescription("Writing pages"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *TerminalReporter) Written(name string, size int) {
	r.bytes += size
	if r.bar != nil {
		r.bar.Describe(name)
		_ = r.bar.Add(1)
	}
}

func (r *TerminalReporter) Finish(dir string) {
	if r.bar == nil {
		return
	}
	_ = r.bar.Finish()
	fmt.Fprintf(r.Out, "Wrote %s of pages to %s\n", humanBytes(r.bytes), dir)
}

// LogReporter emits one structured record per page.
type LogReporter struct {
	Logger *slog.Logger

	total, done, bytes int
	started            time.Time
}

func (r *LogReporter) Start(total int) {
	r.total, r.done, r.bytes = total, 0, 0
	r.started = time.Now()
	r.logger().Info("static export started", "pages", total)
}

func (r *LogReporter) Written(name string, size int) {
	r.done++
	r.bytes += size
	r.logger().Info("page written", "page", name, "bytes", size, "progress", fmt.Sprintf("%d/%d", r.done, r.total))
}

func (r *LogReporter) Finish(dir string) {
	r.logger().Info("static export finished",
		"dir", dir,
		"pages", r.done,
		"bytes", r.bytes,
		"duration", time.Since(r.started).Round(time.Millisecond),
	)
}

func (r *LogReporter) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.Default()
	}
	return r.Logger
}

// Nop discards all progress.
type Nop struct{}

func (Nop) Start(int)           {}
func (Nop) Written(string, int) {}
func (Nop) Finish(string)       {}

func humanBytes(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
