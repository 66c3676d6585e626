package progress

import "fmt"

const (
	repositoryDisplayLabelTemplateConstant = "  %s: branches"
	repositoryDisplayUnitNounConstant      = "branch"
	repositoryDisplayWidthConstant         = 70
)

type branchError struct {
	branchName string
	message    string
}

// RepositoryProgressTracker tracks branch-level progress within one
// repository and collects that repository's errors until they are drained
// into the run-level tracker.
type RepositoryProgressTracker struct {
	repositoryName string
	totalBranches  int
	quiet          bool
	processedCount int
	branchErrors   []branchError
	display        Display
}

// NewRepositoryProgressTracker constructs a repository-level tracker. The
// display allocation rule matches the run tracker; the display is transient
// so it disappears once the repository finishes.
func NewRepositoryProgressTracker(repositoryName string, totalBranches int, quiet bool, displayFactory DisplayFactory) *RepositoryProgressTracker {
	tracker := &RepositoryProgressTracker{
		repositoryName: repositoryName,
		totalBranches:  totalBranches,
		quiet:          quiet,
	}

	if totalBranches > 0 && !quiet && displayFactory != nil {
		tracker.display = displayFactory.CreateDisplay(DisplayOptions{
			Total:          totalBranches,
			Label:          fmt.Sprintf(repositoryDisplayLabelTemplateConstant, repositoryName),
			UnitNoun:       repositoryDisplayUnitNounConstant,
			Width:          repositoryDisplayWidthConstant,
			ShowPercentage: false,
			Transient:      true,
		})
	}

	return tracker
}

// Advance forwards the increment to the live display when one exists and
// keeps a cumulative counter for debuggability.
func (tracker *RepositoryProgressTracker) Advance(count int) {
	tracker.processedCount += count
	if tracker.display != nil {
		tracker.display.Advance(count)
	}
}

// RecordError appends a branch failure to the repository's local list.
func (tracker *RepositoryProgressTracker) RecordError(branchName string, message string) {
	tracker.branchErrors = append(tracker.branchErrors, branchError{branchName: branchName, message: message})
}

// Close releases the live display when one exists. Repeated calls are no-ops.
func (tracker *RepositoryProgressTracker) Close() {
	if tracker.display == nil {
		return
	}
	tracker.display.Close()
	tracker.display = nil
}

// DrainErrors materializes the recorded branch failures as ErrorRecord values
// stamped with the repository name, preserving recording order. Internal
// state is kept, so repeated calls rebuild the same records.
func (tracker *RepositoryProgressTracker) DrainErrors() []ErrorRecord {
	records := make([]ErrorRecord, 0, len(tracker.branchErrors))
	for _, recordedError := range tracker.branchErrors {
		records = append(records, ErrorRecord{
			Repository: tracker.repositoryName,
			Branch:     recordedError.branchName,
			Message:    recordedError.message,
		})
	}
	return records
}

// ProcessedCount reports the cumulative number of processed branches.
func (tracker *RepositoryProgressTracker) ProcessedCount() int {
	return tracker.processedCount
}
