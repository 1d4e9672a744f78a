package config

// ANSI colors for the CLI log prefixes.
const (
	LogErrorColor = "\033[31m"
	LogInfoColor  = "\033[32m"
	LogColorReset = "\033[0m"
)

// PathColor highlights path cells in terminal frames.
const PathColor = "\033[36m"
