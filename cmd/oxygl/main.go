// Command oxygl runs the fixed-function OpenGL teaching demos.
//
//	oxygl list
//	oxygl run material --width 800 --height 800
//	oxygl frame lighting --keys 'ttt<Left>'
package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/Carmen-Shannon/oxy-gl/internal/cli"
	"github.com/Carmen-Shannon/oxy-gl/internal/launch"
)

// GLFW must be driven from the process's first thread, so main stays on it.
func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "oxygl: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	root := cli.NewRootCommand(launch.Desktop)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.Execute()
}
