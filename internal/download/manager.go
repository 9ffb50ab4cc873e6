package download

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/albiontools/icon-downloader/internal/config"
	clienthttp "github.com/albiontools/icon-downloader/internal/http"
	ioutils "github.com/albiontools/icon-downloader/internal/io"
	"github.com/albiontools/icon-downloader/internal/items"
	"github.com/albiontools/icon-downloader/internal/request"
	"github.com/albiontools/icon-downloader/internal/resolve"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a progress update during a run.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// OutcomeKind classifies what happened to one data line.
type OutcomeKind int

const (
	// OutcomeSuccess means the icon was fetched and written (or was
	// already on disk).
	OutcomeSuccess OutcomeKind = iota

	// OutcomeWarning is a success that carried a tier-conflict warning.
	OutcomeWarning

	// OutcomeSkippedInvalid means the line failed parsing or validation.
	OutcomeSkippedInvalid

	// OutcomeUnknownName means the item name is not in the table.
	OutcomeUnknownName

	// OutcomeNetworkFailure means the fetch failed.
	OutcomeNetworkFailure
)

// Retained reports whether a line with this outcome stays in the input
// file on rewrite.
func (k OutcomeKind) Retained() bool {
	return k != OutcomeSuccess && k != OutcomeWarning
}

// LineOutcome is the recorded result for one data line.
type LineOutcome struct {
	LineNumber int
	RawText    string
	Kind       OutcomeKind
	Reason     string
}

// Manager runs the download pipeline: read the input file, resolve and
// fetch each line strictly in order, then compact the input file.
//
// Per-line failures never abort the run; they are reported through the
// progress callback and the offending lines are retained in the input
// file for the user to fix. Only startup problems (unreadable input,
// uncreatable output directory) return an error.
type Manager struct {
	settings *config.Settings
	client   *clienthttp.Client
	resolver *resolve.Resolver

	// DryRun resolves and reports every line without fetching,
	// writing, or rewriting anything.
	DryRun bool

	outcomes []LineOutcome
	mu       sync.RWMutex

	totalLines     int32
	processedLines int32
	succeeded      int32
	failed         int32

	onProgress func(ProgressEvent)
}

// NewManager creates a Manager over the given settings and item table.
func NewManager(settings *config.Settings, table *items.Table, onProgress func(ProgressEvent)) *Manager {
	return &Manager{
		settings:   settings,
		client:     clienthttp.NewClient(settings.Timeout(), settings.UserAgent),
		resolver:   resolve.NewResolver(table),
		onProgress: onProgress,
	}
}

// Run processes the whole input file once.
//
// Lines are handled one at a time: parse, resolve, fetch, write. After
// the pass the input file is atomically rewritten to hold only the
// lines that did not succeed (plus comments and blanks when
// KeepComments is set). Cancelling the context stops the loop; lines
// not yet processed are retained.
func (m *Manager) Run(ctx context.Context) error {
	lines, err := request.ReadLines(m.settings.InputPath)
	if err != nil {
		return fmt.Errorf("reading input file: %w", err)
	}

	var dataCount int32
	for _, line := range lines {
		if line.IsData() {
			dataCount++
		}
	}
	atomic.StoreInt32(&m.totalLines, dataCount)

	if dataCount == 0 {
		m.progress(ProgressEvent{Message: "No download entries found.", Level: LevelInfo})
	}

	if !m.DryRun {
		if err := ioutils.EnsureDir(m.settings.OutputDir); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	var retained []string
	cancelled := false
	for i, line := range lines {
		if ctx.Err() != nil {
			cancelled = true
			retained = append(retained, m.remaining(lines[i:])...)
			break
		}

		if !line.IsData() {
			if m.settings.KeepComments {
				retained = append(retained, line.Raw)
			}
			continue
		}

		outcome := m.processLine(ctx, line)
		m.record(outcome)
		if outcome.Kind.Retained() {
			retained = append(retained, line.Raw)
		}
	}

	if m.DryRun {
		if cancelled {
			return ctx.Err()
		}
		m.progress(ProgressEvent{Message: "Dry run - nothing downloaded, input file left unchanged.", Level: LevelInfo})
		return nil
	}

	if err := request.Rewrite(m.settings.InputPath, retained); err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Could not rewrite %s: %v", m.settings.InputPath, err), Level: LevelWarning})
	} else {
		m.reportRewrite()
	}

	if cancelled {
		return ctx.Err()
	}
	return nil
}

// Progress returns the current line counters for polling front ends.
func (m *Manager) Progress() (processed, total, succeeded, failed int32) {
	return atomic.LoadInt32(&m.processedLines), atomic.LoadInt32(&m.totalLines),
		atomic.LoadInt32(&m.succeeded), atomic.LoadInt32(&m.failed)
}

// Outcomes returns a copy of the per-line outcomes recorded so far.
func (m *Manager) Outcomes() []LineOutcome {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]LineOutcome, len(m.outcomes))
	copy(out, m.outcomes)
	return out
}

func (m *Manager) processLine(ctx context.Context, line request.Line) LineOutcome {
	outcome := LineOutcome{LineNumber: line.Number, RawText: line.Raw}

	parsed, err := request.Parse(line)
	if err != nil {
		return m.failLine(outcome, resolve.Malformed(err))
	}

	req, err := m.resolver.Resolve(parsed)
	if err != nil {
		return m.failLine(outcome, err)
	}

	outcome.Kind = OutcomeSuccess
	if req.TierConflict {
		outcome.Kind = OutcomeWarning
		outcome.Reason = fmt.Sprintf("supplied tier %d ignored; using embedded tier %d", parsed.Tier, req.EmbeddedTier)
		m.progress(ProgressEvent{
			Message: fmt.Sprintf("%q: %s.", req.DisplayName, outcome.Reason),
			Level:   LevelWarning,
		})
	}

	url := req.URL(m.settings.BaseURL)
	dest := filepath.Join(m.settings.OutputDir, req.FileName())

	if m.DryRun {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Would fetch %s -> %s", url, dest), Level: LevelInfo})
		return outcome
	}

	// Rerunning against a half-finished list must not fetch icons that
	// are already on disk.
	if info, err := os.Stat(dest); err == nil && info.Size() > 0 {
		m.progress(ProgressEvent{Message: fmt.Sprintf("%s -> %s (already present)", req.DisplayName, dest), Level: LevelSuccess})
		return outcome
	}

	if err := m.client.DownloadFile(ctx, url, dest, nil); err != nil {
		os.Remove(dest) // drop any partial write
		outcome.Kind = OutcomeNetworkFailure
		outcome.Reason = err.Error()
		m.progress(ProgressEvent{Message: fmt.Sprintf("%s (%s): %v - leaving in file.", req.DisplayName, req.Identifier, err), Level: LevelError})
		return outcome
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("%s -> %s", req.DisplayName, dest), Level: LevelSuccess})
	return outcome
}

// failLine records a typed resolution failure. Unknown names get their
// own outcome kind; every other failure kind counts as invalid.
func (m *Manager) failLine(outcome LineOutcome, err error) LineOutcome {
	outcome.Kind = OutcomeSkippedInvalid
	var failure *resolve.Failure
	if errors.As(err, &failure) && failure.Kind == resolve.KindUnknownName {
		outcome.Kind = OutcomeUnknownName
	}
	outcome.Reason = err.Error()
	m.progress(ProgressEvent{Message: fmt.Sprintf("%s - leaving in file.", err), Level: LevelError})
	return outcome
}

// remaining collects the lines to retain when the run stops early.
func (m *Manager) remaining(lines []request.Line) []string {
	var keep []string
	for _, line := range lines {
		if line.IsData() || m.settings.KeepComments {
			keep = append(keep, line.Raw)
		}
	}
	return keep
}

func (m *Manager) record(outcome LineOutcome) {
	m.mu.Lock()
	m.outcomes = append(m.outcomes, outcome)
	m.mu.Unlock()

	atomic.AddInt32(&m.processedLines, 1)
	if outcome.Kind.Retained() {
		atomic.AddInt32(&m.failed, 1)
	} else {
		atomic.AddInt32(&m.succeeded, 1)
	}
}

func (m *Manager) reportRewrite() {
	_, total, _, failed := m.Progress()
	switch {
	case total == 0:
	case failed > 0:
		m.progress(ProgressEvent{Message: fmt.Sprintf("Kept %d failed line(s) in %s.", failed, m.settings.InputPath), Level: LevelInfo})
	default:
		m.progress(ProgressEvent{Message: fmt.Sprintf("All items downloaded. %s compacted.", m.settings.InputPath), Level: LevelInfo})
	}
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
