package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pranshuparmar/devps/internal/terminal"
	"github.com/pranshuparmar/devps/pkg/model"
)

// Options controls table rendering.
type Options struct {
	Capability terminal.Capability
	// ShowIcons allows icon rendering when the capability permits it.
	ShowIcons bool
}

// iconColumnWidth is the pre-scan pass: 4 cells when icons are wanted,
// the terminal can draw them, and at least one record carries a PNG
// icon; otherwise 0. The width holds for the whole listing, never per
// row.
func iconColumnWidth[E model.Entry](entries []E, opts Options) int {
	if !opts.ShowIcons || opts.Capability.Type != terminal.ITerm2 {
		return 0
	}
	for _, e := range entries {
		for _, icon := range e.IconParameters().Icons() {
			if icon.Format == "png" {
				return 4
			}
		}
	}
	return 0
}

// nameCell renders the name column: the record's first icon (or a
// blank placeholder) plus the name padded to the column width. With no
// icon column the name alone is padded.
func nameCell(e model.Entry, nameWidth, iconWidth int, opts Options) string {
	name := fmt.Sprintf("%-*s", nameWidth-iconWidth, e.DisplayName())
	if iconWidth == 0 {
		return name
	}
	if icons := e.IconParameters().Icons(); len(icons) > 0 {
		return terminal.RenderIcon(icons[0], opts.Capability.IconSize) + " " + name
	}
	return terminal.IconPlaceholder + " " + name
}

// RenderProcessTable writes the aligned process listing. The caller
// sorts records and handles the empty case.
func RenderProcessTable(w io.Writer, procs []model.Process, opts Options) {
	pidWidth, nameWidth := 0, 0
	for _, p := range procs {
		pidWidth = max(pidWidth, len(strconv.Itoa(p.PID)))
		nameWidth = max(nameWidth, len(p.Name))
	}
	iconWidth := iconColumnWidth(procs, opts)
	nameWidth += iconWidth

	fmt.Fprintf(w, "%*s  %s\n", pidWidth, "PID", "Name")
	fmt.Fprintf(w, "%s  %s\n", strings.Repeat("-", pidWidth), strings.Repeat("-", nameWidth))
	for _, p := range procs {
		fmt.Fprintf(w, "%*d  %s\n", pidWidth, p.PID, nameCell(p, nameWidth, iconWidth, opts))
	}
}

// RenderApplicationTable writes the aligned application listing. A PID
// of 0 renders as "-"; its one-character width still participates in
// the PID column width.
func RenderApplicationTable(w io.Writer, apps []model.Application, opts Options) {
	pidWidth, nameWidth, identifierWidth := 0, 0, 0
	for _, a := range apps {
		pidWidth = max(pidWidth, len(strconv.Itoa(a.PID)))
		nameWidth = max(nameWidth, len(a.Name))
		identifierWidth = max(identifierWidth, len(a.Identifier))
	}
	iconWidth := iconColumnWidth(apps, opts)
	nameWidth += iconWidth

	fmt.Fprintf(w, "%*s  %-*s  %-*s\n", pidWidth, "PID", nameWidth, "Name", identifierWidth, "Identifier")
	fmt.Fprintf(w, "%s  %s  %s\n",
		strings.Repeat("-", pidWidth),
		strings.Repeat("-", nameWidth),
		strings.Repeat("-", identifierWidth))
	for _, a := range apps {
		pid := "-"
		if a.PID != 0 {
			pid = strconv.Itoa(a.PID)
		}
		fmt.Fprintf(w, "%*s  %s  %-*s\n",
			pidWidth, pid, nameCell(a, nameWidth, iconWidth, opts), identifierWidth, a.Identifier)
	}
}
