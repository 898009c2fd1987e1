package app

import (
	"fmt"
	"io"
	"runtime/debug"
)

// Version is the application version, overridable at build time:
//
//	go build -ldflags "-X github.com/agbru/fibcompare/internal/app.Version=v1.2.3"
var Version = "dev"

// HasVersionFlag reports whether the arguments request the version banner.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		if arg == "-version" || arg == "--version" {
			return true
		}
	}
	return false
}

// PrintVersion writes the version banner. When no ldflags version was
// injected, the module version recorded in the build info is used instead.
func PrintVersion(out io.Writer) {
	version := Version
	if version == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
			version = info.Main.Version
		}
	}
	fmt.Fprintf(out, "fibcompare %s\n", version)
}
