// Package app wires the CLI surface: flags, terminal negotiation, the
// enumeration backend, and the output renderers.
package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pranshuparmar/devps/internal/device"
	"github.com/pranshuparmar/devps/internal/output"
	"github.com/pranshuparmar/devps/internal/terminal"
	"github.com/pranshuparmar/devps/internal/tui"
	"github.com/pranshuparmar/devps/pkg/model"
)

var (
	flagApplications bool
	flagInstalled    bool
	flagJSON         bool
	flagExcludeIcons bool
	flagNoColor      bool
	flagWatch        bool
)

// Swappable seams for tests.
var (
	enumerator device.Enumerator = &device.Local{}
	detect                       = terminal.Detect
)

var rootCmd = &cobra.Command{
	Use:   "devps",
	Short: "List processes and applications on the target device",
	Long: `devps lists running processes, or applications, on the target device.

Output is an aligned table by default, or JSON with --json. On iTerm2
the table includes application icons rendered inline; --exclude-icons
turns that off.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	rootCmd.Flags().BoolVarP(&flagApplications, "applications", "a", false, "list only applications")
	rootCmd.Flags().BoolVarP(&flagInstalled, "installed", "i", false, "include all installed applications")
	rootCmd.Flags().BoolVarP(&flagJSON, "json", "j", false, "output results as JSON")
	rootCmd.Flags().BoolVarP(&flagExcludeIcons, "exclude-icons", "e", false, "exclude icons in output")
	rootCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "plain output, no icons or escape sequences")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "live process table with periodic refresh")
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func run(cmd *cobra.Command, args []string) error {
	if flagInstalled && !flagApplications {
		return fmt.Errorf("--installed cannot be used without --applications")
	}
	if flagWatch && (flagApplications || flagJSON) {
		return fmt.Errorf("--watch cannot be combined with --applications or --json")
	}
	// Past flag validation: failures from here on are not usage errors.
	cmd.SilenceUsage = true

	if flagWatch {
		return tui.Start(enumerator)
	}

	plain := flagNoColor
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		plain = true
	}
	capability, err := detect(terminal.Options{Plain: plain})
	if err != nil {
		return fmt.Errorf("terminal negotiation: %w", err)
	}

	if flagApplications {
		return listApplications(cmd, capability)
	}
	return listProcesses(cmd, capability)
}

func listProcesses(cmd *cobra.Command, capability terminal.Capability) error {
	scope := model.ScopeMinimal
	if !flagExcludeIcons && !flagJSON && capability.Type == terminal.ITerm2 {
		scope = model.ScopeFull
	}

	procs, err := enumerator.EnumerateProcesses(scope)
	if err != nil {
		return fmt.Errorf("failed to enumerate processes: %w", err)
	}
	output.SortProcesses(procs)

	if flagJSON {
		rendered, err := output.ProcessesJSON(procs)
		if err != nil {
			return err
		}
		cmd.Println(rendered)
		return nil
	}

	if len(procs) == 0 {
		cmd.PrintErrln("No running processes.")
		return nil
	}
	output.RenderProcessTable(cmd.OutOrStdout(), procs, output.Options{
		Capability: capability,
		ShowIcons:  !flagExcludeIcons,
	})
	return nil
}

func listApplications(cmd *cobra.Command, capability terminal.Capability) error {
	scope := model.ScopeMinimal
	if !flagJSON && capability.Type == terminal.ITerm2 {
		scope = model.ScopeFull
	}

	apps, err := enumerator.EnumerateApplications(scope)
	if err != nil {
		return fmt.Errorf("failed to enumerate applications: %w", err)
	}
	if !flagInstalled {
		running := apps[:0]
		for _, a := range apps {
			if a.PID != 0 {
				running = append(running, a)
			}
		}
		apps = running
	}
	output.SortApplications(apps)

	if flagJSON {
		rendered, err := output.ApplicationsJSON(apps)
		if err != nil {
			return err
		}
		cmd.Println(rendered)
		return nil
	}

	if len(apps) == 0 {
		if flagInstalled {
			cmd.PrintErrln("No installed applications.")
		} else {
			cmd.PrintErrln("No running applications.")
		}
		return nil
	}
	output.RenderApplicationTable(cmd.OutOrStdout(), apps, output.Options{
		Capability: capability,
		ShowIcons:  true,
	})
	return nil
}
