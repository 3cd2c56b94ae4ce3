package main

import (
	"context"
	"fmt"

	"github.com/vito/typeof/pkg/ioctx"
)

// overridden with ldflags
var Version = "dev"
var Commit = ""
var Date = ""

func printVersion(ctx context.Context) {
	version := Version

	if Date != "" && Commit != "" {
		version += " (" + Date + " commit " + Commit + ")"
	}

	fmt.Fprintf(ioctx.StdoutFromContext(ctx), "typeof %s\n", version)
}
