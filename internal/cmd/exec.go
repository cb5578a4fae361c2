package cmd

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"github.com/raphi011/browser-schedule/internal/log"
)

// RunContext executes name with args in dir (the current directory if
// empty). A failing command's stderr becomes the error message. If ctx is
// done, ctx.Err() is returned.
func RunContext(ctx context.Context, dir, name string, args ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	done := log.FromContext(ctx).Command(dir, name, args...)
	start := time.Now()

	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir
	var stderr bytes.Buffer
	c.Stderr = &stderr

	err := c.Run()
	done(time.Since(start))
	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if msg := strings.TrimSpace(stderr.String()); msg != "" {
		return errors.New(msg)
	}
	return err
}

// Start launches name with args in dir and returns once the process is
// running. The child is not tied to ctx and is not waited on, so it keeps
// running after the caller exits. If ctx is already done, ctx.Err() is
// returned and nothing is started.
func Start(ctx context.Context, dir, name string, args ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	done := log.FromContext(ctx).Command(dir, name, args...)
	start := time.Now()

	c := exec.Command(name, args...)
	c.Dir = dir
	err := c.Start()
	done(time.Since(start))
	if err != nil {
		return err
	}
	return c.Process.Release()
}
