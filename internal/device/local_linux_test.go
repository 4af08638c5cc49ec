//go:build linux

package device

import (
	"os"
	"testing"
)

func TestListProcessesIncludesSelf(t *testing.T) {
	procs, err := listProcesses()
	if err != nil {
		t.Fatalf("listProcesses() error = %v", err)
	}
	if len(procs) == 0 {
		t.Fatal("listProcesses() returned no processes")
	}

	self := os.Getpid()
	for _, p := range procs {
		if p.PID == self {
			if p.Name == "" {
				t.Error("self process has empty name")
			}
			return
		}
	}
	t.Errorf("listProcesses() missing own pid %d", self)
}
