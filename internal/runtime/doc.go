// Package runtime spawns an analyzer binary as a blocking child process,
// forwards its arguments untouched and captures what it prints. A nonzero
// exit or a failed spawn is reported as a *ProcessError.
package runtime
