package cmd

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/avelkor/sweepwin/internal/core"
	"github.com/avelkor/sweepwin/internal/rules"
	"github.com/avelkor/sweepwin/internal/scan"
	"github.com/avelkor/sweepwin/internal/tui"
)

var (
	scanDrive     string
	scanShowPaths bool
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan for cleanup candidates",
	Long: `Scans all cleanup categories and reports the reclaimable size of each.
Nothing is deleted.`,
	Run: func(cmd *cobra.Command, args []string) {
		runScan()
	},
}

func init() {
	scanCmd.Flags().StringVar(&scanDrive, "drive", "C:", `Drive to scan ("C:", "D:", or "ALL")`)
	scanCmd.Flags().BoolVar(&scanShowPaths, "paths", false, "List every matched path per category")
}

func runScan() {
	ruleset := rules.Defaults()

	var session *scan.Session
	if isatty.IsTerminal(os.Stdout.Fd()) {
		session = runScanInteractive(ruleset)
	} else {
		session = runScanPlain(ruleset)
	}

	printReport(ruleset, session)
}

// runScanInteractive drives the scan from a goroutine and renders live
// progress with bubbletea. Its progress callback feeds the TUI channel
// synchronously, so cancellation from the TUI lands within one rule.
func runScanInteractive(ruleset []rules.Rule) *scan.Session {
	msgs := make(chan tea.Msg)

	session := scan.NewSession(ruleset, scan.Options{
		Drive: scanDrive,
		Progress: func(label string, percent int) {
			msgs <- tui.ProgressMsg{Label: label, Percent: percent}
		},
	})

	go func() {
		session.ScanAll()
		msgs <- tui.DoneMsg{}
	}()

	model := tui.NewScanModel(msgs, session.Cancel)
	if _, err := tea.NewProgram(model).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "progress display failed:", err)
	}
	return session
}

// runScanPlain is the non-TTY path: one progress line per rule.
func runScanPlain(ruleset []rules.Rule) *scan.Session {
	session := scan.NewSession(ruleset, scan.Options{
		Drive: scanDrive,
		Progress: func(label string, percent int) {
			fmt.Printf("[%3d%%] %s\n", percent, label)
		},
	})
	session.ScanAll()
	return session
}

// ─── Report rendering ────────────────────────────────────────────────────────

var (
	reportHeader = lipgloss.NewStyle().Bold(true)
	reportMuted  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"})
	reportErr    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#f87171"})
	reportTotal  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#16a34a", Dark: "#4ade80"})
)

// printReport renders per-category results in rule order. Categories
// skipped by cancellation are absent from the results and are not shown.
func printReport(ruleset []rules.Rule, session *scan.Session) {
	results := session.Results()

	fmt.Println()
	fmt.Printf("  %s\n", reportHeader.Render(fmt.Sprintf("Cleanup candidates on %s", scanDrive)))
	fmt.Println("  " + reportMuted.Render(strings.Repeat("─", 58)))

	for _, r := range ruleset {
		res, ok := results[r.ID]
		if !ok {
			continue
		}

		count := ""
		if res.FileCount > 0 {
			count = fmt.Sprintf("(%d items)", res.FileCount)
		}
		fmt.Printf("  %-34s %10s  %s\n", res.Name, core.FormatSize(res.TotalSize), reportMuted.Render(count))

		if res.Err != "" {
			fmt.Printf("      %s\n", reportErr.Render(res.Err))
		}
		if scanShowPaths {
			for _, p := range res.MatchedPaths {
				fmt.Println("      " + reportMuted.Render(p))
			}
		}
	}

	fmt.Println("  " + reportMuted.Render(strings.Repeat("─", 58)))
	fmt.Printf("  %-34s %10s\n", reportTotal.Render("Total reclaimable"), reportTotal.Render(core.FormatSize(session.TotalSize())))
	fmt.Println()
}
