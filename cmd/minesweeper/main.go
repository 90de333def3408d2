package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" default:"withargs" help:"Play minesweeper in the terminal"`
	Serve    ServeCmd         `cmd:"" help:"Run the websocket game server"`
	Solve    SolveCmd         `cmd:"" help:"Watch the solver play one game"`
	Simulate SimulateCmd      `cmd:"" help:"Measure solver performance over many games"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("minesweeper"),
		kong.Description("Minesweeper engine with a terminal UI, a websocket server and a logic solver"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
