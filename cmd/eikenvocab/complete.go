package main

import (
	"fmt"
	"strings"
)

var commands = []string{
	"count",
	"doc",
	"sentence",
	"stat",
	"import",
	"export",
	"query",
	"bash",
	"version",
	"help",
}

// completeCommand handles the autocompletion requests triggered by the bash completion script.
func completeCommand(args []string, ui UI) error {
	for _, c := range getCompletions(args) {
		_, _ = fmt.Fprintln(ui.Out, c)
	}
	return nil
}

func getCompletions(args []string) []string {
	if len(args) < 1 {
		return nil
	}

	// args[0] is the binary name from COMP_WORDS[0]
	commandIndex := 1
	cursorIndex := len(args) - 1

	if cursorIndex == commandIndex {
		// User is typing the command itself
		lastWord := args[cursorIndex]
		var completions []string
		for _, c := range commands {
			if strings.HasPrefix(c, lastWord) {
				completions = append(completions, c)
			}
		}
		return completions
	}

	if cursorIndex < commandIndex {
		return commands
	}

	return nil
}
