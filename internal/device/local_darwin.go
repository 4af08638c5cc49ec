//go:build darwin

package device

import (
	"fmt"

	"github.com/pranshuparmar/devps/pkg/model"
)

func listProcesses() ([]model.Process, error) {
	out, err := executor.Run("ps", "-axo", "pid=,comm=")
	if err != nil {
		return nil, fmt.Errorf("ps: %w", err)
	}
	return parsePSOutput(out), nil
}
