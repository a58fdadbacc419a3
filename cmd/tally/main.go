package main

import (
	"github.com/alecthomas/kong"
)

// globals holds options shared by every subcommand.
type globals struct{}

var cli struct {
	Globals globals `embed:""`

	Serve   serveCmd   `cmd:"" help:"Run the local web UI."`
	Add     addCmd     `cmd:"" help:"Record an expense from the terminal."`
	List    listCmd    `cmd:"" help:"Print the expense table."`
	Summary summaryCmd `cmd:"" help:"Print today, month, and grand totals."`
	Export  exportCmd  `cmd:"" help:"Write the records to a CSV file."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("tally"),
		kong.Description("Personal expense tracker with a local web UI."))
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
