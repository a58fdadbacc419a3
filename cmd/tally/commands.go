package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	appcli "tally/internal/cli"
	"tally/internal/core"
	"tally/internal/export"
	applog "tally/internal/log"
	"tally/internal/report"
	"tally/internal/store"
)

// openStore is the shared bootstrap for the one-shot subcommands.
func openStore(ctx context.Context) (*store.Store, *applog.Logger, func()) {
	appcli.LoadEnvFile()
	logger := appcli.SetupLogger()
	cfg := appcli.LoadAndValidateConfig(logger)
	st, cleanup := appcli.OpenStore(ctx, logger, cfg)
	return st, logger, cleanup
}

type addCmd struct {
	Amount  string   `arg:"" required:"" help:"Amount, e.g. 12.50."`
	Subject []string `arg:"" required:"" help:"What the money went to."`
}

func (c *addCmd) Run(_ *globals) error {
	ctx := context.Background()
	st, _, cleanup := openStore(ctx)
	defer cleanup()

	cents, err := core.ParseDecimalToCents(c.Amount)
	if err != nil {
		return fmt.Errorf("amount %q: %w", c.Amount, err)
	}
	rec, err := st.Add(ctx, core.Money{Cents: cents}, strings.Join(c.Subject, " "), time.Now())
	if err != nil {
		return err
	}
	fmt.Printf("Recorded %s %s (#%d)\n", rec.Subject, rec.Amount.Display(), rec.ID)
	return nil
}

type listCmd struct {
	Query string `help:"Case-insensitive filter on subject or formatted amount."`
}

func (c *listCmd) Run(_ *globals) error {
	ctx := context.Background()
	st, _, cleanup := openStore(ctx)
	defer cleanup()

	q := strings.ToLower(strings.TrimSpace(c.Query))
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tTIME\tAMOUNT\tSUBJECT")
	for _, rec := range st.Records() {
		if q != "" &&
			!strings.Contains(strings.ToLower(rec.Subject), q) &&
			!strings.Contains(strings.ToLower(rec.Amount.Display()), q) {
			continue
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", rec.ID, rec.Date, rec.Time, rec.Amount.Display(), rec.Subject)
	}
	return w.Flush()
}

type summaryCmd struct{}

func (c *summaryCmd) Run(_ *globals) error {
	ctx := context.Background()
	st, _, cleanup := openStore(ctx)
	defer cleanup()

	now := time.Now()
	totals := report.Summarize(st.Records(), core.DayKey(now), core.MonthKey(now))
	fmt.Printf("Today:      %s\n", totals.Today.Display())
	fmt.Printf("This month: %s\n", totals.Month.Display())
	fmt.Printf("Total:      %s\n", totals.All.Display())
	return nil
}

type exportCmd struct {
	Out string `help:"Output path." default:"expense_data.csv"`
}

func (c *exportCmd) Run(_ *globals) error {
	ctx := context.Background()
	st, logger, cleanup := openStore(ctx)
	defer cleanup()

	f, err := os.Create(c.Out)
	if err != nil {
		return fmt.Errorf("create %s: %w", c.Out, err)
	}
	defer f.Close()

	records := st.Records()
	if err := export.WriteCSV(f, records); err != nil {
		return err
	}
	logger.Info("Exported records",
		applog.FieldOperation, applog.OpExport, applog.FieldCount, len(records), "path", c.Out)
	return nil
}
