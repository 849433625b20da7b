//go:build !windows

package dev

import (
	"context"
	"os"
	"os/exec"
	"syscall"
	"time"
)

// stopGrace is how long a process group gets to exit after SIGTERM
// before it is killed.
const stopGrace = 5 * time.Second

// processHandle tracks a running app process. The process group ID is
// captured at spawn, and a single goroutine reaps the process so a
// crash between rebuilds never leaves a zombie behind.
type processHandle struct {
	cmd    *exec.Cmd
	pgid   int
	exited chan struct{}
}

func startProcess(ctx context.Context, binary, dir string, env []string) (*processHandle, error) {
	cmd := exec.CommandContext(ctx, binary)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = env
	// Own process group so child processes die with the app.
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setpgid: true,
	}

	if err := cmd.Start(); err != nil {
		return nil, err
	}

	proc := &processHandle{
		cmd:    cmd,
		exited: make(chan struct{}),
	}
	if pgid, err := syscall.Getpgid(cmd.Process.Pid); err == nil {
		proc.pgid = pgid
	}

	go func() {
		cmd.Wait()
		close(proc.exited)
	}()

	return proc, nil
}

// signal delivers sig to the whole process group, falling back to the
// leader when the group is gone.
func (p *processHandle) signal(sig syscall.Signal) {
	if p.pgid > 0 {
		if err := syscall.Kill(-p.pgid, sig); err == nil {
			return
		}
	}
	p.cmd.Process.Signal(sig)
}

func stopProcess(proc *processHandle) {
	if proc == nil || proc.cmd == nil || proc.cmd.Process == nil {
		return
	}

	proc.signal(syscall.SIGTERM)

	select {
	case <-proc.exited:
	case <-time.After(stopGrace):
		proc.signal(syscall.SIGKILL)
		<-proc.exited
	}
}
