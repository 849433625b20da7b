//go:build windows

package dev

import (
	"context"
	"os"
	"os/exec"
	"syscall"
	"time"
)

// stopGrace is how long a process gets to exit after Kill before the
// dev server stops waiting for it.
const stopGrace = 5 * time.Second

// processHandle tracks a running app process. A single goroutine reaps
// the process so a crash between rebuilds never leaves a zombie behind.
type processHandle struct {
	cmd    *exec.Cmd
	exited chan struct{}
}

func startProcess(ctx context.Context, binary, dir string, env []string) (*processHandle, error) {
	cmd := exec.CommandContext(ctx, binary)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = env
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CreationFlags: syscall.CREATE_NEW_PROCESS_GROUP,
	}

	if err := cmd.Start(); err != nil {
		return nil, err
	}

	proc := &processHandle{
		cmd:    cmd,
		exited: make(chan struct{}),
	}
	go func() {
		cmd.Wait()
		close(proc.exited)
	}()

	return proc, nil
}

func stopProcess(proc *processHandle) {
	if proc == nil || proc.cmd == nil || proc.cmd.Process == nil {
		return
	}

	proc.cmd.Process.Kill()

	select {
	case <-proc.exited:
	case <-time.After(stopGrace):
	}
}
