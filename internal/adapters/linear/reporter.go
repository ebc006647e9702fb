// Package linear renders command results as plain, line-oriented text.
package linear

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/wcw/internal/core/domain"
	"go.trai.ch/wcw/internal/core/ports"
	"go.trai.ch/wcw/internal/ui/output"
	"go.trai.ch/wcw/internal/ui/style"
)

// Reporter implements ports.Reporter with one line per result.
type Reporter struct {
	mu  sync.Mutex
	out io.Writer

	ok    lipgloss.Style
	warn  lipgloss.Style
	fail  lipgloss.Style
	faint lipgloss.Style
	bold  lipgloss.Style
}

var _ ports.Reporter = (*Reporter)(nil)

// NewReporter creates a Reporter writing to w with the terminal color profile.
// A nil w writes to os.Stdout, colored only when it is a terminal.
func NewReporter(w io.Writer) *Reporter {
	if w == nil {
		return NewReporterWithProfile(os.Stdout, output.StdoutProfile)
	}
	return NewReporterWithProfile(w, output.ColorProfile)
}

// NewReporterWithProfile creates a Reporter with a custom profile selector.
func NewReporterWithProfile(w io.Writer, profileFn func() termenv.Profile) *Reporter {
	if w == nil {
		w = os.Stdout
	}
	r := lipgloss.NewRenderer(w, termenv.WithProfile(profileFn()))

	return &Reporter{
		out:   w,
		ok:    r.NewStyle().Foreground(style.Green),
		warn:  r.NewStyle().Foreground(style.Yellow),
		fail:  r.NewStyle().Foreground(style.Red).Bold(true),
		faint: r.NewStyle().Foreground(style.Slate),
		bold:  r.NewStyle().Foreground(style.Iris).Bold(true),
	}
}

// Install prints every installed, skipped and failed folder followed by totals.
func (r *Reporter) Install(report *domain.InstallReport) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.installLines(report)

	cloned, copied, skipped, failures := report.Cloned(), report.Copied(), report.Skipped(), report.Failures()
	r.printf("%s %d cloned, %d copied, %d skipped, %d failed\n",
		r.bold.Render(style.Arrow), len(cloned), len(copied), len(skipped), len(failures))
}

// Update prints the final state of every tracked repository, the
// dependency installs it triggered and the stash notices.
func (r *Reporter) Update(report *domain.UpdateReport) {
	r.mu.Lock()
	defer r.mu.Unlock()

	outcomes := report.Outcomes()
	failed := 0
	for _, o := range outcomes {
		switch {
		case o.State == domain.StateDepsSynced:
			r.printf("%s %-16s %s\n", r.ok.Render(style.Check), o.State, o.Folder)
		case o.State.Fatal():
			failed++
			r.failure(fmt.Sprintf("%s %-16s %s", r.fail.Render(style.Cross), o.State, o.Folder), o.URL, o.Err)
		default:
			failed++
			r.failure(fmt.Sprintf("%s %-16s %s", r.warn.Render(style.Warning), o.State, o.Folder), o.URL, o.Err)
		}
	}

	if install := report.Install(); install != nil {
		r.installLines(install)
	}

	for _, folder := range report.Stashed() {
		r.printf("Folder %s had local modifications that were stashed.\n", folder)
	}

	r.printf("%s %d updated, %d failed\n", r.bold.Render(style.Arrow), len(outcomes)-failed, failed)
}

// Entries prints one tracked folder per line with its repository.
func (r *Reporter) Entries(entries []domain.WorkspaceEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(entries) == 0 {
		r.printf("%s\n", r.faint.Render("no repositories tracked"))
		return
	}

	width := 0
	for _, e := range entries {
		width = max(width, len(e.Folder))
	}
	for _, e := range entries {
		r.printf("%s %-*s %s\n", r.ok.Render(style.Dot), width, e.Folder, r.faint.Render(e.Repo.URL))
	}
}

func (r *Reporter) installLines(report *domain.InstallReport) {
	for _, folder := range report.Cloned() {
		r.printf("%s cloned  %s\n", r.ok.Render(style.Check), folder)
	}
	for _, folder := range report.Copied() {
		r.printf("%s copied  %s\n", r.ok.Render(style.Tilde), folder)
	}
	for _, folder := range report.Skipped() {
		r.printf("%s skipped %s\n", r.faint.Render(style.Dot), folder)
	}
	for _, f := range report.Failures() {
		r.failure(r.fail.Render(style.Cross)+" failed  "+failureSubject(f), f.Origin, f.Err)
	}
}

func (r *Reporter) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}

func failureSubject(f domain.Failure) string {
	switch {
	case f.Folder != "" && f.Descriptor != "":
		return f.Folder + " (" + f.Descriptor + ")"
	case f.Folder != "":
		return f.Folder
	default:
		return f.Descriptor
	}
}

// subjectKeys are the metadata keys already shown on the failure line.
var subjectKeys = map[string]bool{"folder": true, "descriptor": true, "origin": true, "url": true}

// failure prints head with the top-level message, then the origin and every
// cause of err with its details, such as the stderr of a failed command.
func (r *Reporter) failure(head, origin string, err error) {
	entries := output.ErrorChain(err)
	if len(entries) == 0 {
		entries = []output.ErrorEntry{{Message: "unknown error"}}
	}

	r.printf("%s: %s\n", head, entries[0].Message)
	if origin != "" {
		r.printf("    %s\n", r.faint.Render("origin: "+origin))
	}
	r.details("    ", entries[0].Metadata)
	for _, entry := range entries[1:] {
		r.printf("    %s %s\n", r.faint.Render(style.Arrow), indent(entry.Message, "      "))
		r.details("      ", entry.Metadata)
	}
}

func (r *Reporter) details(prefix string, md map[string]any) {
	for _, key := range slices.Sorted(maps.Keys(md)) {
		if subjectKeys[key] {
			continue
		}
		r.printf("%s%s %s\n", prefix, r.faint.Render(key+":"), indent(fmt.Sprint(md[key]), prefix+"  "))
	}
}

func indent(s, prefix string) string {
	return strings.ReplaceAll(s, "\n", "\n"+prefix)
}
