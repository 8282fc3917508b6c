package main

import (
	"os"

	"answercheck/cmd/answercheck/commands"
)

func main() {
	root := commands.NewRootCommand()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
