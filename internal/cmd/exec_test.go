package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/raphi011/browser-schedule/internal/log"
)

func logCtx() context.Context {
	l := log.New(&bytes.Buffer{}, false, false)
	return log.WithLogger(context.Background(), l)
}

func TestRunContext_Success(t *testing.T) {
	t.Parallel()
	err := RunContext(logCtx(), "", "echo", "hello")
	if err != nil {
		t.Errorf("RunContext(echo hello) = %v, want nil", err)
	}
}

func TestRunContext_Failure(t *testing.T) {
	t.Parallel()
	err := RunContext(logCtx(), "", "sh", "-c", "exit 1")
	if err == nil {
		t.Error("RunContext(exit 1) = nil, want error")
	}
}

func TestRunContext_StderrMessage(t *testing.T) {
	t.Parallel()
	err := RunContext(logCtx(), "", "sh", "-c", "echo 'bad thing' >&2; exit 1")
	if err == nil {
		t.Fatal("RunContext = nil, want error")
	}
	if err.Error() != "bad thing" {
		t.Errorf("RunContext error = %q, want %q", err.Error(), "bad thing")
	}
}

func TestRunContext_ContextCancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(logCtx())
	cancel()
	err := RunContext(ctx, "", "sleep", "10")
	if err == nil {
		t.Error("RunContext with cancelled context = nil, want error")
	}
	if err != context.Canceled {
		t.Errorf("RunContext error = %v, want context.Canceled", err)
	}
}

func TestRunContext_Dir(t *testing.T) {
	t.Parallel()
	// Verify command runs in specified directory
	err := RunContext(logCtx(), "/tmp", "pwd")
	if err != nil {
		t.Errorf("RunContext with dir = %v, want nil", err)
	}
}

func TestRunContext_LogsCommandInVerbose(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	ctx := log.WithLogger(context.Background(), log.New(&buf, true, false))
	if err := RunContext(ctx, "/tmp", "echo", "hi"); err != nil {
		t.Fatalf("RunContext = %v, want nil", err)
	}
	if got := buf.String(); !strings.HasPrefix(got, "[/tmp] $ echo hi (") {
		t.Errorf("logged %q, want command trace", got)
	}
}

func TestStart_ReturnsWhileChildRuns(t *testing.T) {
	t.Parallel()
	begin := time.Now()
	if err := Start(logCtx(), "", "sleep", "5"); err != nil {
		t.Fatalf("Start(sleep 5) = %v, want nil", err)
	}
	if elapsed := time.Since(begin); elapsed > 3*time.Second {
		t.Errorf("Start waited %s for the child to exit", elapsed)
	}
}

func TestStart_MissingBinary(t *testing.T) {
	t.Parallel()
	if err := Start(logCtx(), "", "browser-schedule-no-such-binary"); err == nil {
		t.Error("Start(missing binary) = nil, want error")
	}
}

func TestStart_ContextCancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(logCtx())
	cancel()
	if err := Start(ctx, "", "sleep", "5"); err != context.Canceled {
		t.Errorf("Start error = %v, want context.Canceled", err)
	}
}

func TestStart_LogsCommandInVerbose(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	ctx := log.WithLogger(context.Background(), log.New(&buf, true, false))
	if err := Start(ctx, "", "true"); err != nil {
		t.Fatalf("Start = %v, want nil", err)
	}
	if got := buf.String(); !strings.HasPrefix(got, "$ true (") {
		t.Errorf("logged %q, want command trace", got)
	}
}
