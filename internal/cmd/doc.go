// Package cmd runs external commands with proper error handling.
//
// [RunContext] wraps [os/exec.CommandContext]: it captures stderr and uses it
// as the error message when the command fails, and traces the command line
// and its duration through the context logger in verbose mode.
//
// # Usage
//
//	if err := cmd.RunContext(ctx, "", "open", "-a", "Zen", url); err != nil {
//	    return fmt.Errorf("open %s: %w", url, err)
//	}
package cmd
