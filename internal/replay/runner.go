package replay

import (
	"io"

	"go.uber.org/zap"

	"github.com/temirov/repoprogress/internal/progress"
)

const (
	repositoryReplayedMessageConstant = "repository replayed"
	logFieldRepositoryConstant        = "repository"
	logFieldBranchCountConstant       = "branch_count"
	logFieldErrorCountConstant        = "error_count"
)

// RunnerDependencies configures collaborators for replay execution.
type RunnerDependencies struct {
	Logger         *zap.Logger
	DisplayFactory progress.DisplayFactory
	Output         io.Writer
}

// RenderOptions captures user-provided rendering modifiers.
type RenderOptions struct {
	Quiet bool
}

// Runner drives the progress trackers through a recorded batch run.
type Runner struct {
	dependencies RunnerDependencies
}

// NewRunner constructs a Runner instance with nop fallbacks for the logger.
func NewRunner(dependencies RunnerDependencies) *Runner {
	if dependencies.Logger == nil {
		dependencies.Logger = zap.NewNop()
	}
	return &Runner{dependencies: dependencies}
}

// Render replays the manifest: one run-level tracker spans all repositories,
// each repository gets a branch-level tracker whose errors are folded upward,
// and the final summary is printed after the run tracker is closed.
func (runner *Runner) Render(manifest Manifest, options RenderOptions) {
	runTracker := progress.NewRunProgressTracker(
		len(manifest.Repositories),
		options.Quiet,
		runner.dependencies.DisplayFactory,
		runner.dependencies.Output,
	)
	defer runTracker.Close()

	for repositoryIndex := range manifest.Repositories {
		runner.renderRepository(runTracker, manifest.Repositories[repositoryIndex], options)
		runTracker.Advance(1)
	}

	runTracker.Close()
	runTracker.PrintSummary()
}

func (runner *Runner) renderRepository(runTracker *progress.RunProgressTracker, repository RepositoryOutcome, options RenderOptions) {
	repositoryTracker := progress.NewRepositoryProgressTracker(
		repository.Name,
		len(repository.Branches),
		options.Quiet,
		runner.dependencies.DisplayFactory,
	)
	defer repositoryTracker.Close()

	for branchIndex := range repository.Branches {
		branch := repository.Branches[branchIndex]
		if len(branch.Error) > 0 {
			repositoryTracker.RecordError(branch.Name, branch.Error)
		}
		repositoryTracker.Advance(1)
	}

	repositoryTracker.Close()

	drainedRecords := repositoryTracker.DrainErrors()
	for _, record := range drainedRecords {
		runTracker.RecordError(record.Repository, record.Branch, record.Message)
	}
	if len(repository.Error) > 0 {
		runTracker.RecordError(repository.Name, "", repository.Error)
	}

	runner.dependencies.Logger.Debug(
		repositoryReplayedMessageConstant,
		zap.String(logFieldRepositoryConstant, repository.Name),
		zap.Int(logFieldBranchCountConstant, len(repository.Branches)),
		zap.Int(logFieldErrorCountConstant, len(drainedRecords)),
	)
}
