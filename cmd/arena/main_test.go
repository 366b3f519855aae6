package main

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

// usageLines collects the "arena ..." command lines shown in help texts.
func usageLines(cmds ...*cobra.Command) []string {
	var lines []string
	for _, c := range cmds {
		for _, line := range strings.Split(c.Long, "\n") {
			line = strings.TrimSpace(line)
			if !strings.HasPrefix(line, "arena ") {
				continue
			}
			line, _, _ = strings.Cut(line, " - ")
			lines = append(lines, strings.TrimSpace(line))
		}
	}
	return lines
}

func TestHelpExamplesParse(t *testing.T) {
	lines := usageLines(append([]*cobra.Command{rootCmd}, rootCmd.Commands()...)...)
	if len(lines) == 0 {
		t.Fatal("no examples found in help texts")
	}

	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			cmd, args, err := rootCmd.Find(strings.Fields(line)[1:])
			if err != nil {
				t.Fatalf("Find: %v", err)
			}
			if cmd == rootCmd {
				t.Fatalf("example names no subcommand")
			}
			if err := cmd.ParseFlags(args); err != nil {
				t.Errorf("ParseFlags(%q): %v", args, err)
			}
			if err := cmd.ValidateArgs(cmd.Flags().Args()); err != nil {
				t.Errorf("ValidateArgs: %v", err)
			}
		})
	}
}
