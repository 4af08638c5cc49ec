package device

import "os/exec"

// Executor runs an external command and returns its stdout. Swappable
// so tests can script command output.
type Executor interface {
	Run(name string, args ...string) ([]byte, error)
}

// ExecutorFunc adapts a plain function to Executor.
type ExecutorFunc func(name string, args ...string) ([]byte, error)

func (f ExecutorFunc) Run(name string, args ...string) ([]byte, error) {
	return f(name, args...)
}

type RealExecutor struct{}

func (r *RealExecutor) Run(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).Output()
}

var executor Executor = &RealExecutor{}

func SetExecutor(e Executor) {
	executor = e
}

func ResetExecutor() {
	executor = &RealExecutor{}
}
