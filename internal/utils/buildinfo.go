package utils

import (
	"os/exec"
	"runtime/debug"
	"strings"
)

const unknownVersion = "unknown"

// GetApplicationVersion determines the application version from Go build info,
// falling back to git describe for development builds.
func GetApplicationVersion() string {
	buildInfo, buildInfoAvailable := debug.ReadBuildInfo()
	if buildInfoAvailable && buildInfo.Main.Version != "" && buildInfo.Main.Version != "(devel)" {
		return buildInfo.Main.Version
	}

	// #nosec G204
	describeCommand := exec.Command("git", "describe", "--tags", "--always", "--dirty")
	describeOutput, describeError := describeCommand.Output()
	if describeError == nil && len(describeOutput) > 0 {
		return strings.TrimSpace(string(describeOutput))
	}

	return unknownVersion
}
