package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pranshuparmar/devps/internal/terminal"
	"github.com/pranshuparmar/devps/pkg/model"
)

func TestRenderProcessTablePlain(t *testing.T) {
	procs := []model.Process{
		{PID: 1, Name: "launchd"},
		{PID: 981, Name: "bash"},
	}

	var buf bytes.Buffer
	RenderProcessTable(&buf, procs, Options{})

	want := "PID  Name\n" +
		"---  -------\n" +
		"  1  launchd\n" +
		"981  bash   \n"
	if buf.String() != want {
		t.Errorf("RenderProcessTable() =\n%q\nwant\n%q", buf.String(), want)
	}
}

func TestRenderProcessTableWithIcons(t *testing.T) {
	icon := model.Icon{Format: "png", Image: []byte{1, 2, 3}}
	procs := []model.Process{
		{PID: 7, Name: "Finder", Parameters: model.Parameters{"icons": []model.Icon{icon}}},
		{PID: 42, Name: "launchd"},
	}
	opts := Options{
		Capability: terminal.Capability{Type: terminal.ITerm2, IconSize: 31},
		ShowIcons:  true,
	}

	var buf bytes.Buffer
	RenderProcessTable(&buf, procs, opts)

	// Icon column adds 4 to the name width: 7 ("launchd") + 4 = 11.
	want := "PID  Name\n" +
		"--  -----------\n" +
		" 7  " + terminal.RenderIcon(icon, 31) + " Finder \n" +
		"42  " + terminal.IconPlaceholder + " launchd\n"
	if buf.String() != want {
		t.Errorf("RenderProcessTable() =\n%q\nwant\n%q", buf.String(), want)
	}
}

func TestRenderProcessTableIconsSuppressed(t *testing.T) {
	icon := model.Icon{Format: "png", Image: []byte{1}}
	procs := []model.Process{
		{PID: 7, Name: "Finder", Parameters: model.Parameters{"icons": []model.Icon{icon}}},
	}

	tests := []struct {
		name string
		opts Options
	}{
		{"icons excluded", Options{
			Capability: terminal.Capability{Type: terminal.ITerm2, IconSize: 31},
			ShowIcons:  false,
		}},
		{"simple terminal", Options{ShowIcons: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			RenderProcessTable(&buf, procs, tt.opts)
			if strings.Contains(buf.String(), "\x1b]1337") {
				t.Errorf("RenderProcessTable() emitted an inline image:\n%q", buf.String())
			}
		})
	}
}

func TestRenderApplicationTable(t *testing.T) {
	apps := []model.Application{
		{PID: 42, Name: "Bar", Identifier: "com.bar"},
		{PID: 0, Name: "Foo", Identifier: "com.foo"},
	}

	var buf bytes.Buffer
	RenderApplicationTable(&buf, apps, Options{})

	want := "PID  Name  Identifier\n" +
		"--  ---  -------\n" +
		"42  Bar  com.bar\n" +
		" -  Foo  com.foo\n"
	if buf.String() != want {
		t.Errorf("RenderApplicationTable() =\n%q\nwant\n%q", buf.String(), want)
	}
}

func TestIconColumnWidthBinary(t *testing.T) {
	iterm := Options{
		Capability: terminal.Capability{Type: terminal.ITerm2, IconSize: 31},
		ShowIcons:  true,
	}
	png := model.Parameters{"icons": []model.Icon{{Format: "png", Image: []byte{1}}}}
	jpeg := model.Parameters{"icons": []model.Icon{{Format: "jpeg", Image: []byte{1}}}}

	tests := []struct {
		name  string
		procs []model.Process
		opts  Options
		want  int
	}{
		{"png icon present", []model.Process{{Name: "a", Parameters: png}, {Name: "b"}}, iterm, 4},
		{"unrecognized format only", []model.Process{{Name: "a", Parameters: jpeg}}, iterm, 0},
		{"no icons at all", []model.Process{{Name: "a"}, {Name: "b"}}, iterm, 0},
		{"icons disabled", []model.Process{{Name: "a", Parameters: png}}, Options{Capability: iterm.Capability}, 0},
		{"simple terminal", []model.Process{{Name: "a", Parameters: png}}, Options{ShowIcons: true}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := iconColumnWidth(tt.procs, tt.opts)
			if got != tt.want {
				t.Errorf("iconColumnWidth() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestColumnWidthMonotonicity(t *testing.T) {
	procs := []model.Process{
		{PID: 1, Name: "a"},
		{PID: 123456, Name: "some-long-process-name"},
		{PID: 42, Name: "mid"},
	}

	var buf bytes.Buffer
	RenderProcessTable(&buf, procs, Options{})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	// header + separator + one line per record
	if len(lines) != 2+len(procs) {
		t.Fatalf("got %d lines, want %d", len(lines), 2+len(procs))
	}
	sep := strings.SplitN(lines[1], "  ", 2)
	if len(sep) != 2 {
		t.Fatalf("separator %q not two columns", lines[1])
	}
	if len(sep[0]) < len("123456") {
		t.Errorf("pid column width %d < longest pid", len(sep[0]))
	}
	if len(sep[1]) < len("some-long-process-name") {
		t.Errorf("name column width %d < longest name", len(sep[1]))
	}
}
