package replay

import "strings"

const (
	quietConfigurationSuffixConstant    = ".quiet"
	manifestConfigurationSuffixConstant = ".manifest"
)

// CommandConfiguration captures configuration values for the render command.
type CommandConfiguration struct {
	Quiet        bool   `mapstructure:"quiet"`
	ManifestPath string `mapstructure:"manifest"`
}

// DefaultCommandConfiguration provides baseline configuration values for the render command.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		Quiet:        false,
		ManifestPath: "",
	}
}

// DefaultConfigurationValues exposes render defaults keyed under the provided configuration prefix.
func DefaultConfigurationValues(configurationKey string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		configurationKey + quietConfigurationSuffixConstant:    defaults.Quiet,
		configurationKey + manifestConfigurationSuffixConstant: defaults.ManifestPath,
	}
}

// Sanitize trims configuration values without applying implicit defaults.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := configuration
	sanitized.ManifestPath = strings.TrimSpace(configuration.ManifestPath)
	return sanitized
}
