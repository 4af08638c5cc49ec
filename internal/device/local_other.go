//go:build !linux && !darwin

package device

import (
	"fmt"

	"github.com/pranshuparmar/devps/pkg/model"
)

func listProcesses() ([]model.Process, error) {
	return nil, fmt.Errorf("process listing: %w", ErrUnsupported)
}
