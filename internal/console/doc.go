// Package console renders live progress bars on a terminal stream.
//
// BarDisplayFactory implements the progress display capability with an
// in-place text bar redrawn via carriage returns, so nested trackers can show
// completion without disturbing the summary written to standard output.
package console
