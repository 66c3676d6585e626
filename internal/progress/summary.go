package progress

import (
	"fmt"
	"sort"
	"strings"
)

const (
	summarySeparatorCharacterConstant        = "="
	summarySeparatorWidthConstant            = 80
	summaryLeadingSeparatorTemplateConstant  = "\n%s\n"
	summaryHeaderTemplateConstant            = "PROCESSING COMPLETE: %d/%d repositories processed\n"
	summaryTrailingSeparatorTemplateConstant = "%s\n"
	summaryNoErrorsLineConstant              = "\n✓ No errors encountered!\n"
	summaryErrorCountTemplateConstant        = "\n✗ %d ERROR(S) ENCOUNTERED:\n\n"
	summaryRepositoryHeaderTemplateConstant  = "Repository: %s\n"
	summaryBranchErrorLineTemplateConstant   = "  • Branch [%s]: %s\n"
	summaryPlainErrorLineTemplateConstant    = "  • %s\n"
	summaryBlockSeparatorConstant            = "\n"
)

// PrintSummary writes the end-of-run report to the tracker's output writer.
// Repositories are visited in ascending lexicographic order while each
// repository's errors keep their recording order; scripts scraping run output
// rely on this layout.
func (tracker *RunProgressTracker) PrintSummary() {
	separatorLine := strings.Repeat(summarySeparatorCharacterConstant, summarySeparatorWidthConstant)
	fmt.Fprintf(tracker.output, summaryLeadingSeparatorTemplateConstant, separatorLine)
	fmt.Fprintf(tracker.output, summaryHeaderTemplateConstant, tracker.processedCount, tracker.totalRepositories)
	fmt.Fprintf(tracker.output, summaryTrailingSeparatorTemplateConstant, separatorLine)

	if len(tracker.errorRecords) == 0 {
		fmt.Fprint(tracker.output, summaryNoErrorsLineConstant)
		return
	}

	fmt.Fprintf(tracker.output, summaryErrorCountTemplateConstant, len(tracker.errorRecords))

	errorsByRepository := make(map[string][]ErrorRecord, len(tracker.errorRecords))
	for _, record := range tracker.errorRecords {
		errorsByRepository[record.Repository] = append(errorsByRepository[record.Repository], record)
	}

	repositoryNames := make([]string, 0, len(errorsByRepository))
	for repositoryName := range errorsByRepository {
		repositoryNames = append(repositoryNames, repositoryName)
	}
	sort.Strings(repositoryNames)

	for _, repositoryName := range repositoryNames {
		fmt.Fprintf(tracker.output, summaryRepositoryHeaderTemplateConstant, repositoryName)
		for _, record := range errorsByRepository[repositoryName] {
			if len(record.Branch) > 0 {
				fmt.Fprintf(tracker.output, summaryBranchErrorLineTemplateConstant, record.Branch, record.Message)
				continue
			}
			fmt.Fprintf(tracker.output, summaryPlainErrorLineTemplateConstant, record.Message)
		}
		fmt.Fprint(tracker.output, summaryBlockSeparatorConstant)
	}
}
