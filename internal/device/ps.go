package device

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pranshuparmar/devps/pkg/model"
)

// parsePSOutput turns `ps -axo pid=,comm=` output into process
// records. Lines that do not parse are skipped; ps occasionally emits
// truncated rows for processes that exit mid-snapshot.
func parsePSOutput(out []byte) []model.Process {
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	procs := make([]model.Process, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.SplitN(line, " ", 2)
		if len(fields) < 2 {
			continue
		}
		pid, err := strconv.Atoi(fields[0])
		if err != nil {
			continue
		}
		// comm is a full executable path on macOS
		name := filepath.Base(strings.TrimSpace(fields[1]))
		procs = append(procs, model.Process{PID: pid, Name: name})
	}
	return procs
}
