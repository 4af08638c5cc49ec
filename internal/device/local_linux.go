//go:build linux

package device

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pranshuparmar/devps/pkg/model"
)

func listProcesses() ([]model.Process, error) {
	entries, err := os.ReadDir("/proc")
	if err != nil {
		return nil, fmt.Errorf("read /proc: %w", err)
	}
	procs := make([]model.Process, 0, len(entries))
	for _, entry := range entries {
		pid, err := strconv.Atoi(entry.Name())
		if err != nil {
			continue
		}
		comm, err := os.ReadFile(filepath.Join("/proc", entry.Name(), "comm"))
		if err != nil {
			// process exited between ReadDir and here
			continue
		}
		procs = append(procs, model.Process{
			PID:  pid,
			Name: strings.TrimSpace(string(comm)),
		})
	}
	return procs, nil
}
