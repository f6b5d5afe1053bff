// analyze is an interactive rules-engine console: a human enters moves and queries,
// the engine enforces legality and reports check/mate, with no move selection of its
// own. See: https://www.chessprogramming.org/Chess_Engine for a description of the
// protocol role this stands in for.
package main

import (
	"context"
	"flag"

	"github.com/kernelchess/rules/pkg/board/fen"
	"github.com/kernelchess/rules/pkg/console"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var position = flag.String("fen", "", "Start position (default to standard)")

var version = build.NewVersion(0, 1, 0)

func main() {
	ctx := context.Background()
	flag.Parse()

	logw.Infof(ctx, "analyze %v", version)

	if *position == "" {
		*position = fen.Initial
	}
	pos, err := fen.Decode(*position)
	if err != nil {
		logw.Exitf(ctx, "Invalid fen '%v': %v", *position, err)
	}

	in := console.ReadStdinLines(ctx)
	d, out := console.NewDriver(ctx, pos, in)
	defer d.Close()

	console.WriteStdoutLines(ctx, out)
}
