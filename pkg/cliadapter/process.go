package cliadapter

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"syscall"
	"time"

	"github.com/praxisworks/supervisor/pkg/models"
)

// exitWaitTimeout bounds the wait for process exit after SIGKILL.
const exitWaitTimeout = 2 * time.Second

// Run executes the CLI in its own process group with instructions on
// stdin and stdout/stderr captured to files. On deadline expiry or
// cancellation the whole group gets SIGTERM, then SIGKILL after KillGrace.
func (a *cliAdapter) Run(ctx context.Context, spec RunSpec) (*RunResult, error) {
	instructions, err := os.Open(spec.InstructionsPath)
	if err != nil {
		return nil, models.WrapKind(models.KindAdapterIO, "opening instructions file", err)
	}
	defer func() { _ = instructions.Close() }()

	stdout, err := os.Create(spec.StdoutPath)
	if err != nil {
		return nil, models.WrapKind(models.KindAdapterIO, "creating stdout file", err)
	}
	defer func() { _ = stdout.Close() }()

	stderr, err := os.Create(spec.StderrPath)
	if err != nil {
		return nil, models.WrapKind(models.KindAdapterIO, "creating stderr file", err)
	}
	defer func() { _ = stderr.Close() }()

	cmd := exec.Command(a.cfg.Executable, a.argv(spec.Model)...)
	cmd.Dir = spec.Cwd
	cmd.Stdin = instructions
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return nil, models.WrapKind(models.KindAdapterIO, fmt.Sprintf("starting %s", a.cfg.Executable), err)
	}
	a.logger.Info("CLI process started",
		"pid", cmd.Process.Pid,
		"model", spec.Model,
		"cwd", spec.Cwd)

	waitCh := make(chan error, 1)
	go func() { waitCh <- cmd.Wait() }()

	var waitErr error
	interrupted := false
	select {
	case waitErr = <-waitCh:
	case <-ctx.Done():
		interrupted = true
		waitErr = a.terminate(cmd, waitCh, spec.KillGrace)
	}

	result := &RunResult{
		StdoutPath: spec.StdoutPath,
		StderrPath: spec.StderrPath,
		ExitCode:   exitCode(cmd, waitErr),
		DurationMs: time.Since(start).Milliseconds(),
	}

	switch {
	case interrupted:
		kind := models.KindCancelled
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			kind = models.KindTimeout
		}
		return result, models.WrapKind(kind, fmt.Sprintf("%s run interrupted", a.service), ctx.Err())
	case waitErr != nil:
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			return result, models.NewKindError(models.KindAdapterExit,
				fmt.Sprintf("%s exited with code %d", a.service, result.ExitCode))
		}
		return result, models.WrapKind(models.KindAdapterIO, fmt.Sprintf("waiting for %s", a.service), waitErr)
	}
	return result, nil
}

// terminate escalates SIGTERM → SIGKILL on the process group and waits
// for the exit status so no zombie is left behind.
func (a *cliAdapter) terminate(cmd *exec.Cmd, waitCh <-chan error, grace time.Duration) error {
	_ = signalProcessGroup(cmd, syscall.SIGTERM)
	if grace > 0 {
		select {
		case err := <-waitCh:
			return err
		case <-time.After(grace):
		}
	}
	a.logger.Warn("CLI process ignored SIGTERM, escalating", "pid", cmd.Process.Pid)
	_ = signalProcessGroup(cmd, syscall.SIGKILL)
	select {
	case err := <-waitCh:
		return err
	case <-time.After(exitWaitTimeout):
		return fmt.Errorf("process did not exit after SIGKILL")
	}
}

// signalProcessGroup signals the whole group so CLI-spawned children die
// with their parent.
func signalProcessGroup(cmd *exec.Cmd, sig syscall.Signal) error {
	if cmd == nil || cmd.Process == nil {
		return nil
	}
	pgid, err := syscall.Getpgid(cmd.Process.Pid)
	if err != nil {
		if errors.Is(err, syscall.ESRCH) {
			return nil
		}
		return err
	}
	if err := syscall.Kill(-pgid, sig); err != nil && !errors.Is(err, syscall.ESRCH) {
		return err
	}
	return nil
}

func exitCode(cmd *exec.Cmd, waitErr error) int {
	if cmd.ProcessState != nil {
		return cmd.ProcessState.ExitCode()
	}
	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
