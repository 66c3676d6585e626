package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/temirov/repoprogress/internal/progress"
)

const (
	lineReturnConstant               = "\r"
	lineBreakConstant                = "\n"
	spaceCharacterConstant           = " "
	barFilledCharacterConstant       = "#"
	barEmptyCharacterConstant        = "-"
	barDelimiterConstant             = "|"
	labelSeparatorConstant           = ": "
	fractionTemplateConstant         = "%d/%d"
	percentageSuffixTemplateConstant = " [%d%%]"
	percentageScaleConstant          = 100
	minimumBarWidthConstant          = 10
)

// BarDisplayFactory allocates text progress bars writing to a shared stream.
type BarDisplayFactory struct {
	writer io.Writer
}

// NewBarDisplayFactory constructs a factory rendering to the provided writer,
// defaulting to standard error so bars never interleave with the summary.
func NewBarDisplayFactory(writer io.Writer) *BarDisplayFactory {
	if writer == nil {
		writer = os.Stderr
	}
	return &BarDisplayFactory{writer: writer}
}

// CreateDisplay implements progress.DisplayFactory by drawing an initial
// empty bar and returning a handle for subsequent redraws.
func (factory *BarDisplayFactory) CreateDisplay(options progress.DisplayOptions) progress.Display {
	display := &barDisplay{writer: factory.writer, options: options}
	display.render()
	return display
}

type barDisplay struct {
	writer       io.Writer
	options      progress.DisplayOptions
	currentCount int
	closed       bool
}

// Advance moves the bar forward by count and redraws it in place.
func (display *barDisplay) Advance(count int) {
	if display.closed {
		return
	}
	display.currentCount += count
	display.render()
}

// Close finalizes the bar: transient bars are erased from the line while
// persistent bars keep their final state on screen.
func (display *barDisplay) Close() {
	if display.closed {
		return
	}
	display.closed = true

	if display.options.Transient {
		fmt.Fprint(display.writer, lineReturnConstant+strings.Repeat(spaceCharacterConstant, display.options.Width)+lineReturnConstant)
		return
	}
	fmt.Fprint(display.writer, lineBreakConstant)
}

func (display *barDisplay) render() {
	prefix := display.options.Label + labelSeparatorConstant
	suffix := spaceCharacterConstant + fmt.Sprintf(fractionTemplateConstant, display.currentCount, display.options.Total)
	if display.options.ShowPercentage {
		suffix += fmt.Sprintf(percentageSuffixTemplateConstant, display.percentage())
	}

	barWidth := display.options.Width - len(prefix) - len(suffix) - 2*len(barDelimiterConstant)
	if barWidth < minimumBarWidthConstant {
		barWidth = minimumBarWidthConstant
	}

	filledWidth := display.filledWidth(barWidth)
	bar := barDelimiterConstant +
		strings.Repeat(barFilledCharacterConstant, filledWidth) +
		strings.Repeat(barEmptyCharacterConstant, barWidth-filledWidth) +
		barDelimiterConstant

	fmt.Fprint(display.writer, lineReturnConstant+prefix+bar+suffix)
}

func (display *barDisplay) percentage() int {
	if display.options.Total <= 0 {
		return 0
	}
	return display.currentCount * percentageScaleConstant / display.options.Total
}

// filledWidth clamps the fill to the bar width so advancing past the total
// keeps the drawing stable while the fraction and percentage run past 100%.
func (display *barDisplay) filledWidth(barWidth int) int {
	if display.options.Total <= 0 {
		return 0
	}
	filledWidth := display.currentCount * barWidth / display.options.Total
	if filledWidth < 0 {
		return 0
	}
	if filledWidth > barWidth {
		return barWidth
	}
	return filledWidth
}
