// Package main provides the ngrules binary entry point. ngrules is a
// curated corpus of Angular best practices, browsable from the terminal
// and queryable over the Model Context Protocol.
package main

import (
	"os"

	"github.com/ngrules/ngrules/internal/cli"
)

// version is stamped by release builds via -ldflags.
var version = "dev"

func main() {
	os.Exit(cli.Execute(version))
}
