package progress

// DisplayOptions describes the live display requested by a tracker.
type DisplayOptions struct {
	Total          int
	Label          string
	UnitNoun       string
	Width          int
	ShowPercentage bool
	Transient      bool
}

// Display renders live completion feedback for one tracker.
type Display interface {
	Advance(count int)
	Close()
}

// DisplayFactory allocates Display instances on behalf of trackers.
type DisplayFactory interface {
	CreateDisplay(options DisplayOptions) Display
}
