package device

import (
	"fmt"

	"github.com/pranshuparmar/devps/pkg/model"
)

// Local enumerates the host the tool runs on. It reports no icons, so
// scope makes no difference to its output.
type Local struct{}

func (l *Local) EnumerateProcesses(scope model.Scope) ([]model.Process, error) {
	return listProcesses()
}

// EnumerateApplications fails: host operating systems expose no
// installed-application registry this backend can portably query.
func (l *Local) EnumerateApplications(scope model.Scope) ([]model.Application, error) {
	return nil, fmt.Errorf("application listing: %w", ErrUnsupported)
}
