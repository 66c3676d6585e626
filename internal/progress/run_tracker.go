package progress

import (
	"io"
	"os"
)

const (
	runDisplayLabelConstant    = "Processing repositories"
	runDisplayUnitNounConstant = "repo"
	runDisplayWidthConstant    = 80
)

// RunProgressTracker tracks completion across the full set of repositories in
// a batch run and owns the accumulated error records.
type RunProgressTracker struct {
	totalRepositories int
	quiet             bool
	processedCount    int
	errorRecords      []ErrorRecord
	display           Display
	output            io.Writer
}

// NewRunProgressTracker constructs a run-level tracker. A live display is
// allocated only when at least one repository is expected and quiet mode is
// disabled. The summary is written to output, defaulting to standard output.
func NewRunProgressTracker(totalRepositories int, quiet bool, displayFactory DisplayFactory, output io.Writer) *RunProgressTracker {
	if output == nil {
		output = os.Stdout
	}

	tracker := &RunProgressTracker{
		totalRepositories: totalRepositories,
		quiet:             quiet,
		output:            output,
	}

	if totalRepositories > 0 && !quiet && displayFactory != nil {
		tracker.display = displayFactory.CreateDisplay(DisplayOptions{
			Total:          totalRepositories,
			Label:          runDisplayLabelConstant,
			UnitNoun:       runDisplayUnitNounConstant,
			Width:          runDisplayWidthConstant,
			ShowPercentage: true,
			Transient:      false,
		})
	}

	return tracker
}

// Advance adds count to the processed total and forwards the increment to the
// live display when one exists. Counts beyond the configured total are
// accepted; the tracker never clamps.
func (tracker *RunProgressTracker) Advance(count int) {
	tracker.processedCount += count
	if tracker.display != nil {
		tracker.display.Advance(count)
	}
}

// RecordError appends a new error record. Branch and message may be empty;
// the repository name is never inspected for prior occurrences.
func (tracker *RunProgressTracker) RecordError(repositoryName string, branchName string, message string) {
	tracker.errorRecords = append(tracker.errorRecords, ErrorRecord{
		Repository: repositoryName,
		Branch:     branchName,
		Message:    message,
	})
}

// Close releases the live display when one exists. Repeated calls are no-ops.
func (tracker *RunProgressTracker) Close() {
	if tracker.display == nil {
		return
	}
	tracker.display.Close()
	tracker.display = nil
}

// ProcessedCount reports the cumulative number of processed repositories.
func (tracker *RunProgressTracker) ProcessedCount() int {
	return tracker.processedCount
}
