// Package device is the enumeration backend boundary: something that
// can list processes and applications for a given scope.
package device

import (
	"errors"

	"github.com/pranshuparmar/devps/pkg/model"
)

//go:generate mockgen -destination=mocks/mock_enumerator.go -package=mocks github.com/pranshuparmar/devps/internal/device Enumerator

// ErrUnsupported marks an enumeration the backend cannot perform on
// this platform.
var ErrUnsupported = errors.New("not supported on this platform")

// Enumerator lists what runs (or is installed) on a target device.
// ScopeFull asks for optional parameters such as icons; backends that
// have none treat it as ScopeMinimal.
type Enumerator interface {
	EnumerateProcesses(scope model.Scope) ([]model.Process, error)
	EnumerateApplications(scope model.Scope) ([]model.Application, error)
}
