// Package terminal negotiates inline-image support with the attached
// terminal and renders icons through the iTerm2 escape protocol.
package terminal

import (
	"fmt"
	"io"
	"math"
	"os"
	"runtime"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// Type identifies how capable the attached terminal is.
type Type int

const (
	// Simple terminals get plain text only.
	Simple Type = iota
	// ITerm2 terminals understand the 1337 inline-image extension.
	ITerm2
)

// Capability is the result of negotiation. IconSize is the square icon
// edge in pixels and is only meaningful when Type is ITerm2.
type Capability struct {
	Type     Type
	IconSize int
}

// Options gates whether negotiation is attempted at all.
type Options struct {
	// Plain suppresses all escape-sequence probing, e.g. when the user
	// asked for colorless output or NO_COLOR is set.
	Plain bool
}

// iconCellAspect converts one cell's pixel height into the pixel edge
// of a square icon spanning roughly three cells of width.
const iconCellAspect = 1.77

// Detect probes the attached terminal for iTerm2 inline-image support.
// It is called once per run, before any other output. When stdin or
// stdout is not a terminal, plain mode was requested, or the host OS
// is not macOS, it returns Simple without touching the terminal.
//
// Probing puts the terminal into raw mode for its duration; the prior
// mode is restored on every path, including errors.
func Detect(opts Options) (Capability, error) {
	if opts.Plain || runtime.GOOS != "darwin" {
		return Capability{}, nil
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return Capability{}, nil
	}

	fd := int(os.Stdin.Fd())
	saved, err := term.MakeRaw(fd)
	if err != nil {
		return Capability{}, fmt.Errorf("enter raw mode: %w", err)
	}
	defer term.Restore(fd, saved)

	return negotiate(stdinStdout{})
}

// stdinStdout is the real terminal: probes go to stdout, replies are
// read byte-wise from stdin.
type stdinStdout struct{}

func (stdinStdout) Read(p []byte) (int, error)  { return os.Stdin.Read(p) }
func (stdinStdout) Write(p []byte) (int, error) { return os.Stdout.Write(p) }

// negotiate runs the probe exchange against an already-raw terminal.
// Replies that merely fail to match fall through to Simple; replies
// that cannot be parsed at all (or a short read) are errors.
func negotiate(t io.ReadWriter) (Capability, error) {
	// Two status probes up front. The first only iTerm2 answers
	// meaningfully, the second every VT-compatible terminal answers,
	// so there is always something to read.
	if _, err := io.WriteString(t, "\x1b[1337n\x1b[5n"); err != nil {
		return Capability{}, fmt.Errorf("write capability probe: %w", err)
	}

	resp, err := readReply(t, 'n')
	if err != nil {
		return Capability{}, err
	}
	if resp == "0" || resp == "3" {
		// Terminal answered the generic status probe first: the 1337
		// probe was swallowed, so there is no second reply coming.
		return Capability{}, nil
	}

	// One more reply is pending regardless of what the first one was.
	// Its content is not validated, only consumed.
	if _, err := readReply(t, 'n'); err != nil {
		return Capability{}, err
	}

	version, ok := strings.CutPrefix(resp, "ITERM2 ")
	if !ok {
		return Capability{}, nil
	}
	tokens := strings.SplitN(version, ".", 3)
	if len(tokens) < 2 {
		return Capability{}, nil
	}
	major, err := strconv.Atoi(tokens[0])
	if err != nil {
		return Capability{}, fmt.Errorf("parse terminal version %q: %w", resp, err)
	}
	if major < 3 {
		return Capability{}, nil
	}

	heightPx, err := queryHeight(t, "\x1b[14t")
	if err != nil {
		return Capability{}, err
	}
	heightCells, err := queryHeight(t, "\x1b[18t")
	if err != nil {
		return Capability{}, err
	}

	return Capability{Type: ITerm2, IconSize: iconSize(heightPx, heightCells)}, nil
}

// iconSize derives the square icon edge in pixels from the window
// height in pixels and cells.
func iconSize(heightPx, heightCells int) int {
	return int(math.Ceil(float64(heightPx) / float64(heightCells) * iconCellAspect))
}

// queryHeight sends a window-size report request and parses the second
// semicolon-delimited field of the t-terminated reply.
func queryHeight(t io.ReadWriter, probe string) (int, error) {
	if _, err := io.WriteString(t, probe); err != nil {
		return 0, fmt.Errorf("write geometry probe: %w", err)
	}
	resp, err := readReply(t, 't')
	if err != nil {
		return 0, err
	}
	fields := strings.Split(resp, ";")
	if len(fields) < 2 {
		return 0, fmt.Errorf("malformed geometry reply %q", resp)
	}
	height, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, fmt.Errorf("parse geometry reply %q: %w", resp, err)
	}
	return height, nil
}

// readReply consumes one escape-sequence reply: the two introducer
// bytes are discarded, then bytes accumulate until the terminator.
func readReply(r io.Reader, terminator byte) (string, error) {
	buf := make([]byte, 1)
	for i := 0; i < 2; i++ {
		if _, err := io.ReadFull(r, buf); err != nil {
			return "", fmt.Errorf("read terminal reply: %w", err)
		}
	}
	var reply strings.Builder
	for {
		if _, err := io.ReadFull(r, buf); err != nil {
			return "", fmt.Errorf("read terminal reply: %w", err)
		}
		if buf[0] == terminator {
			return reply.String(), nil
		}
		reply.WriteByte(buf[0])
	}
}
