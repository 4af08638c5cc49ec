package output

import (
	"encoding/json"

	"github.com/pranshuparmar/devps/pkg/model"
)

type processEntry struct {
	PID  int    `json:"pid"`
	Name string `json:"name"`
}

type applicationEntry struct {
	// PID is null for applications that are installed but not running.
	PID        *int   `json:"pid"`
	Name       string `json:"name"`
	Identifier string `json:"identifier"`
}

// ProcessesJSON renders the listing as a 2-space-indented JSON array,
// preserving record order. An empty listing yields "[]".
func ProcessesJSON(procs []model.Process) (string, error) {
	entries := make([]processEntry, 0, len(procs))
	for _, p := range procs {
		entries = append(entries, processEntry{PID: p.PID, Name: p.Name})
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ApplicationsJSON is ProcessesJSON for applications; a PID of 0 is
// emitted as null.
func ApplicationsJSON(apps []model.Application) (string, error) {
	entries := make([]applicationEntry, 0, len(apps))
	for _, a := range apps {
		entry := applicationEntry{Name: a.Name, Identifier: a.Identifier}
		if a.PID != 0 {
			pid := a.PID
			entry.PID = &pid
		}
		entries = append(entries, entry)
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
