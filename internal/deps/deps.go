// Package deps verifies the external tools the sync pipeline shells out to.
package deps

import (
	"fmt"
	"os/exec"
	"strings"

	"srtsync/internal/config"
)

// Requirement defines an external binary the tool relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Detail      string
}

// Requirements builds the dependency list for the active configuration.
// uvx is only required when the WhisperX engine is selected; the OpenAI
// engine talks to a remote API and needs no local runner.
func Requirements(cfg *config.Config) []Requirement {
	return []Requirement{
		{
			Name:        "FFmpeg",
			Command:     cfg.FFmpegBinary(),
			Description: "Audio segment extraction",
		},
		{
			Name:        "FFprobe",
			Command:     cfg.FFprobeBinary(),
			Description: "Media stream inspection",
		},
		{
			Name:        "uvx",
			Command:     "uvx",
			Description: "Runs the WhisperX engine",
			Optional:    cfg.Transcriber.Engine != config.EngineWhisperX,
		},
	}
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		if cmd == "" {
			status.Available = false
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		if _, err := exec.LookPath(cmd); err != nil {
			status.Available = false
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		results = append(results, status)
	}
	return results
}

// MissingRequired counts unavailable dependencies that are not optional.
func MissingRequired(statuses []Status) int {
	missing := 0
	for _, status := range statuses {
		if !status.Available && !status.Optional {
			missing++
		}
	}
	return missing
}
