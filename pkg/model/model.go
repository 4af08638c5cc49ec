// Package model holds the record types exchanged between the device
// enumeration backend and the output layer.
package model

// Scope controls how much detail the enumeration backend returns.
type Scope string

const (
	// ScopeMinimal omits optional parameters such as icons.
	ScopeMinimal Scope = "minimal"
	// ScopeFull requests everything the backend knows, icons included.
	ScopeFull Scope = "full"
)

// Icon is a raw image attached to a process or application record.
type Icon struct {
	Format string // e.g. "png"
	Image  []byte
}

// Parameters carries backend-specific extras. The "icons" key, when
// present, holds a []Icon ordered by preference.
type Parameters map[string]any

// HasIcons reports whether the record carries an icons entry at all.
// An empty icon list still counts: presence of the key is what the
// sort order keys on.
func (p Parameters) HasIcons() bool {
	_, ok := p["icons"]
	return ok
}

// Icons returns the record's icon list, or nil.
func (p Parameters) Icons() []Icon {
	icons, _ := p["icons"].([]Icon)
	return icons
}

// Process is one running process on the target device. Records are
// immutable once returned by the backend and live for a single listing.
type Process struct {
	PID        int
	Name       string
	Parameters Parameters
}

// Application is one installed or running application on the target
// device. A PID of 0 means installed but not currently running.
type Application struct {
	PID        int
	Name       string
	Identifier string
	Parameters Parameters
}

// Entry is the surface shared by Process and Application that the
// layout engine needs: a display name and icon access.
type Entry interface {
	DisplayName() string
	IconParameters() Parameters
}

func (p Process) DisplayName() string { return p.Name }

func (p Process) IconParameters() Parameters { return p.Parameters }

func (a Application) DisplayName() string { return a.Name }

func (a Application) IconParameters() Parameters { return a.Parameters }
