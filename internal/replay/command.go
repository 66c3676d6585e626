package replay

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/repoprogress/internal/console"
	"github.com/temirov/repoprogress/internal/utils"
)

const (
	commandUseConstant                  = "render [manifest]"
	commandShortDescriptionConstant     = "Render a recorded batch run as live progress and an error summary"
	commandLongDescriptionConstant      = "render replays repository and branch outcomes from a YAML run manifest, drawing nested progress bars and printing the end-of-run error summary grouped by repository."
	quietFlagNameConstant               = "quiet"
	quietFlagDescriptionConstant        = "Suppress live progress bars while keeping the final summary"
	manifestPathMissingMessageConstant  = "run manifest path required; provide a positional argument or configure tools.render.manifest"
	manifestLoadFailureTemplateConstant = "unable to load run manifest: %w"
	unexpectedArgumentsMessageConstant  = "render accepts at most one positional argument"
)

var errUnexpectedArguments = errors.New(unexpectedArgumentsMessageConstant)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the Cobra command for rendering recorded runs.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider func() CommandConfiguration
}

// Build constructs the render command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		RunE:  builder.run,
	}

	command.Flags().Bool(quietFlagNameConstant, false, quietFlagDescriptionConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	if len(arguments) > 1 {
		return errUnexpectedArguments
	}

	configuration := builder.resolveConfiguration()

	manifestPath := configuration.ManifestPath
	if len(arguments) > 0 {
		manifestPath = strings.TrimSpace(arguments[0])
	}
	if len(manifestPath) == 0 {
		return errors.New(manifestPathMissingMessageConstant)
	}

	manifest, manifestError := LoadManifest(manifestPath)
	if manifestError != nil {
		return fmt.Errorf(manifestLoadFailureTemplateConstant, manifestError)
	}

	quiet := configuration.Quiet
	if command.Flags().Changed(quietFlagNameConstant) {
		quiet, _ = command.Flags().GetBool(quietFlagNameConstant)
	}

	runner := NewRunner(RunnerDependencies{
		Logger:         builder.resolveLogger(),
		DisplayFactory: console.NewBarDisplayFactory(utils.NewFlushingWriter(command.ErrOrStderr())),
		Output:         utils.NewFlushingWriter(command.OutOrStdout()),
	})

	runner.Render(manifest, RenderOptions{Quiet: quiet})

	return nil
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider().Sanitize()
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}

	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}

	return logger
}
