package cmd

// Exit codes for rest CLI. Every error the user can cause, bad flags
// included, is reported with the usage text and exits with ExitSuccess.
const (
	// ExitSuccess is used for every completed invocation, including ones
	// that reported an error
	ExitSuccess = 0

	// ExitUsageError is used if cobra itself fails to execute
	ExitUsageError = 64
)
