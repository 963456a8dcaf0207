// Command evtcdump prints a summary (or a JSON snapshot) of an arcdps
// combat log. It is a convenience example, not part of the library's
// supported API surface.
package main

import (
	"fmt"
	"os"

	_ "github.com/gw2evtc/evtclib/analyzer/all"
	"github.com/gw2evtc/evtclib/container"
	"github.com/gw2evtc/evtclib/evtc"
	"github.com/gw2evtc/evtclib/evtcjson"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var zip bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "evtcdump <path>",
		Short: "Summarize an arcdps .evtc combat log",
		Long: "evtcdump decodes and materializes an arcdps .evtc combat log and\n" +
			"prints its encounter, game mode, challenge-mote flag, and outcome.\n" +
			"Pass --json for a full machine-readable snapshot instead.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], zip, asJSON)
		},
	}

	cmd.Flags().BoolVar(&zip, "zip", false, "the input file is zip-compressed (arcdps default)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print a full JSON snapshot instead of a one-line summary")
	return cmd
}

func run(cmd *cobra.Command, path string, zip bool, asJSON bool) error {
	compression := container.None
	if zip {
		compression = container.Zip
	}

	log, err := evtc.ProcessFile(path, compression)
	if err != nil {
		return fmt.Errorf("process %s: %w", path, err)
	}

	if asJSON {
		out, err := evtcjson.MarshalIndent(log)
		if err != nil {
			return fmt.Errorf("marshal snapshot: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	printSummary(cmd, log)
	return nil
}

func printSummary(cmd *cobra.Command, log *evtc.Log) {
	out := cmd.OutOrStdout()

	encounter, ok := log.Encounter()
	if !ok {
		fmt.Fprintf(out, "unrecognized encounter (species %#x)\n", log.BossID())
		return
	}
	mode, _ := log.GameMode()

	an, hasAnalyzer := log.Analyzer()
	cm := "normal mode"
	outcome := "unknown"
	if hasAnalyzer {
		if an.IsCM() {
			cm = "challenge mote"
		}
		if o, ok := an.Outcome(); ok {
			outcome = o.String()
		} else {
			outcome = "n/a"
		}
	}

	fmt.Fprintf(out, "%s (%s, %s) -> %s\n", encounter, mode, cm, outcome)
}
