// Command deskctl inspects and maintains a deskpilot data directory without
// starting the desktop app.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "deskctl:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	root, env := newRootCmd(os.Stdout, os.Stderr)
	defer env.Close()
	root.SetArgs(args)
	return root.Execute()
}
