// Package utils contains general helper functions used across the listing tool.
package utils

const (
	// GitIgnoreFileName is the name of the ignore-rule source inside the listed directory.
	GitIgnoreFileName = ".gitignore"

	// LoggerInitializationFailedMessageFormat reports a failure to build the application logger.
	LoggerInitializationFailedMessageFormat = "failed to initialize logger: %w"
	// ApplicationExecutionFailedMessage prefixes fatal command execution errors.
	ApplicationExecutionFailedMessage = "application execution failed"
)
