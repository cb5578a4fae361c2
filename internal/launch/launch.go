// Package launch hands a URL to a browser application.
package launch

import (
	"context"
	"fmt"
	"runtime"

	"github.com/raphi011/browser-schedule/internal/cmd"
)

// Command returns the program and arguments that open url in browser on
// goos. On macOS browser is an application name for "open -a"; elsewhere it
// is run directly with the URL as its only argument.
func Command(goos, browser, url string) (string, []string) {
	if goos == "darwin" {
		return "open", []string{"-a", browser, url}
	}
	return browser, []string{url}
}

// Open launches browser with url. On macOS it waits for "open -a" to hand
// the URL over; elsewhere the browser is started detached so it outlives
// the command.
func Open(ctx context.Context, browser, url string) error {
	return open(ctx, runtime.GOOS, browser, url)
}

func open(ctx context.Context, goos, browser, url string) error {
	if browser == "" {
		return fmt.Errorf("no browser configured")
	}
	name, args := Command(goos, browser, url)
	run := cmd.Start
	if goos == "darwin" {
		run = cmd.RunContext
	}
	if err := run(ctx, "", name, args...); err != nil {
		return fmt.Errorf("open %s in %s: %w", url, browser, err)
	}
	return nil
}
