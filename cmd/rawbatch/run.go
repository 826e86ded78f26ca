package main

import (
	"bytes"
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"rawbatch/internal/app"
	"rawbatch/internal/config"
	"rawbatch/internal/domain"
	"rawbatch/internal/infra/encode"
	"rawbatch/internal/infra/fs"
	"rawbatch/internal/infra/raw"
	"rawbatch/internal/logging"
	"rawbatch/internal/presentation"
	"rawbatch/internal/tui"
)

// run plans and executes one batch. Only configuration and planning failures
// are returned; job failures end up in the summary.
func run(ctx context.Context, cfg config.Config, stdout, stderr io.Writer) error {
	// Log lines would tear the progress bar, so they are held back until it
	// has finished.
	var held bytes.Buffer
	logOut, logErr := stdout, stderr
	if cfg.Progress {
		logOut, logErr = &held, &held
	}
	logger := logging.New(logOut, logErr, cfg.Verbose)

	filesystem := fs.OSFS{}
	decoder := raw.Decoder{Binary: cfg.Dcraw}
	if cfg.Policy.OnRaw == domain.ActionParse && !decoder.Available() {
		logger.Errorf("Warning: %s not found, raw files will fail to decode", cfg.Dcraw)
	}

	planner := &app.Planner{
		FS:         filesystem,
		Walker:     filesystem,
		Resolver:   &app.Resolver{FS: filesystem, Classifier: cfg.Classifier, Limit: cfg.RenameLimit},
		Classifier: cfg.Classifier,
		Policy:     cfg.Policy,
		Encoder:    cfg.Encoder,
		Logger:     logger,
	}
	plan, err := planner.Plan(ctx, cfg.Input, cfg.Output)
	if err != nil {
		return err
	}

	printer := presentation.Printer{Writer: stdout, Verbose: cfg.Verbose}
	if cfg.Verbose {
		printer.PrintPlan(plan)
	}

	scheduler := &app.Scheduler{
		Executor: &app.Executor{
			FS:         filesystem,
			Decoder:    decoder,
			Encoder:    encode.Encoder{},
			Classifier: cfg.Classifier,
			Logger:     logger,
		},
		Workers: cfg.Workers,
		Logger:  logger,
	}

	var stats domain.Statistics
	if cfg.Progress {
		stats = runWithProgress(ctx, scheduler, plan, cfg)
		if _, err := held.WriteTo(stdout); err != nil {
			return err
		}
	} else {
		stats = scheduler.Run(ctx, plan.Jobs)
	}

	report := stats.Report(cfg.Workers)
	if cfg.Progress {
		fmt.Fprintln(stdout, tui.RenderSummary(tui.SummaryRows(report)))
		return nil
	}
	printer.PrintSummary(report)
	return nil
}

func runWithProgress(ctx context.Context, scheduler *app.Scheduler, plan app.Plan, cfg config.Config) domain.Statistics {
	updates := make(chan tui.ProgressUpdate, 64)
	model := tui.NewModel(tui.Config{InputDir: plan.InputBase, OutputDir: plan.OutputBase, Workers: cfg.Workers}, updates)
	program := tea.NewProgram(model)

	uiDone := make(chan struct{})
	go func() {
		_, _ = program.Run()
		close(uiDone)
	}()

	scheduler.OnProgress = func(done, total int, path string) {
		select {
		case updates <- tui.ProgressUpdate{Done: done, Total: total, Path: path}:
		case <-uiDone:
		}
	}
	stats := scheduler.Run(ctx, plan.Jobs)

	close(updates)
	<-uiDone
	return stats
}
