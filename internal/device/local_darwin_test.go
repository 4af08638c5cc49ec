//go:build darwin

package device

import (
	"errors"
	"testing"
)

func TestListProcessesParsesExecutorOutput(t *testing.T) {
	SetExecutor(ExecutorFunc(func(name string, args ...string) ([]byte, error) {
		if name != "ps" {
			t.Errorf("unexpected command %q", name)
		}
		return []byte("    1 /sbin/launchd\n  981 /bin/bash\n"), nil
	}))
	defer ResetExecutor()

	procs, err := listProcesses()
	if err != nil {
		t.Fatalf("listProcesses() error = %v", err)
	}
	if len(procs) != 2 {
		t.Fatalf("got %d processes, want 2", len(procs))
	}
	if procs[1].PID != 981 || procs[1].Name != "bash" {
		t.Errorf("procs[1] = %+v, want pid 981 bash", procs[1])
	}
}

func TestListProcessesExecutorFailure(t *testing.T) {
	wantErr := errors.New("ps exploded")
	SetExecutor(ExecutorFunc(func(name string, args ...string) ([]byte, error) {
		return nil, wantErr
	}))
	defer ResetExecutor()

	_, err := listProcesses()
	if !errors.Is(err, wantErr) {
		t.Errorf("listProcesses() error = %v, want wrapped %v", err, wantErr)
	}
}
