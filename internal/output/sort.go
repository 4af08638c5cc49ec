package output

import (
	"sort"

	"github.com/pranshuparmar/devps/pkg/model"
)

// SortProcesses orders processes for display: icon-bearing records
// first, then by name ascending. The sort is stable so records with
// equal keys keep the backend's relative order.
func SortProcesses(procs []model.Process) {
	sort.SliceStable(procs, func(i, j int) bool {
		a, b := procs[i], procs[j]
		aHasIcon := a.Parameters.HasIcons()
		bHasIcon := b.Parameters.HasIcons()
		if aHasIcon != bHasIcon {
			return aHasIcon
		}
		return a.Name < b.Name
	})
}

// SortApplications orders applications for display: running records
// (PID != 0) first, then by name ascending. Stable, like SortProcesses.
func SortApplications(apps []model.Application) {
	sort.SliceStable(apps, func(i, j int) bool {
		a, b := apps[i], apps[j]
		aRunning := a.PID != 0
		bRunning := b.PID != 0
		if aRunning != bRunning {
			return aRunning
		}
		return a.Name < b.Name
	})
}
