// Package progress tracks batch completion across repositories and the
// branches inside them.
//
// It offers RunProgressTracker for run-level progress and the final error
// summary, RepositoryProgressTracker for branch-level progress within one
// repository, and the Display capability that renders live feedback without
// coupling the trackers to a terminal implementation.
package progress
