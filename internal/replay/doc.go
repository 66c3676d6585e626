// Package replay renders recorded batch outcomes as live progress output.
//
// It offers LoadManifest for parsing YAML run manifests, Runner for driving
// the progress trackers through a recorded run, and CommandBuilder for the
// Cobra command exposing the renderer on the command line.
package replay
