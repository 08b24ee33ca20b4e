package main

import (
	"context"
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"fex/internal/app"
	"fex/internal/config"
	"fex/internal/domain"
	appErrors "fex/internal/errors"
	"fex/internal/infra/fs"
	"fex/internal/logging"
	"fex/internal/presentation"
	"fex/internal/prompt"
	"fex/internal/tui"
)

func run(ctx context.Context, opts config.Options) error {
	var pr config.Prompter
	if isTerminal(os.Stdin) {
		pr = prompt.NewSession(os.Stdin, os.Stdout)
	}

	cfg, err := config.Collect(opts, pr, fs.OSFS{})
	if err != nil {
		return err
	}

	if cfg.Plain || !isTerminal(os.Stdout) {
		return runPlain(ctx, cfg)
	}
	return runTUI(ctx, cfg)
}

func runPlain(ctx context.Context, cfg config.Config) error {
	filesystem := fs.OSFS{}
	logger := logging.New(os.Stderr, cfg.Verbose)
	printer := presentation.Printer{Writer: os.Stdout, Verbose: cfg.Verbose}

	printer.PrintHeader(presentation.RunInfo{
		Source:     cfg.Source,
		Dest:       cfg.Dest,
		Extensions: cfg.Extensions,
		Overwrite:  cfg.Overwrite,
		Preserve:   cfg.Preserve,
		DryRun:     cfg.DryRun,
	})

	scanner := app.Scanner{
		FS:         filesystem,
		Logger:     logger,
		Extensions: cfg.Extensions,
		Preserve:   cfg.Preserve,
	}

	plan, err := scanner.Scan(ctx, cfg.Source, cfg.Dest)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			printer.PrintCancelled()
			return nil
		}
		return err
	}

	if plan.Total() == 0 {
		printer.PrintNoMatches()
		return nil
	}

	if cfg.DryRun {
		printer.PrintDryRun(plan)
		return nil
	}

	copier := app.Copier{
		FS:        filesystem,
		Logger:    logger,
		Overwrite: cfg.Overwrite,
		OnResult:  printer.PrintResult,
	}

	summary, err := copier.Run(ctx, plan)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			printer.PrintCancelled()
			printer.PrintSummary(summary, plan.Warnings)
			return nil
		}
		return err
	}

	printer.PrintSummary(summary, plan.Warnings)
	return nil
}

func runTUI(ctx context.Context, cfg config.Config) error {
	filesystem := fs.OSFS{}
	printer := presentation.Printer{Writer: os.Stdout, Verbose: cfg.Verbose}

	// Verbose timing lines would tear the interactive rendering, so the
	// TUI runs with a silent logger. Scan warnings still reach the user
	// through the plan itself.
	logger := logging.Logger{}

	var program *tea.Program

	scan := func() tea.Cmd {
		return func() tea.Msg {
			scanner := app.Scanner{
				FS:         filesystem,
				Logger:     logger,
				Extensions: cfg.Extensions,
				Preserve:   cfg.Preserve,
				OnMatch: func(found int) {
					program.Send(tui.ScanProgressMsg{Found: found})
				},
			}

			plan, err := scanner.Scan(ctx, cfg.Source, cfg.Dest)
			if err != nil {
				if errors.Is(err, context.Canceled) {
					return nil
				}
				return tui.ErrorMsg{Err: err}
			}
			return tui.PlanReadyMsg{Plan: plan}
		}
	}

	copyFiles := func(plan domain.CopyPlan) tea.Cmd {
		return func() tea.Msg {
			var lastFile string
			copier := app.Copier{
				FS:        filesystem,
				Logger:    logger,
				Overwrite: cfg.Overwrite,
				OnResult: func(result domain.Result) {
					lastFile = result.Item.Entry.RelPath
				},
				OnProgress: func(current, total int) {
					program.Send(tui.CopyProgressMsg{Current: current, Total: total, File: lastFile})
				},
			}

			summary, err := copier.Run(ctx, plan)
			if err != nil {
				if errors.Is(err, context.Canceled) {
					return nil
				}
				return tui.ErrorMsg{Err: err}
			}
			return tui.CopyDoneMsg{Summary: summary}
		}
	}

	model := tui.NewModel(tui.Config{
		Source:      cfg.Source,
		Dest:        cfg.Dest,
		Extensions:  cfg.Extensions.String(),
		Overwrite:   cfg.Overwrite,
		Preserve:    cfg.Preserve,
		DryRun:      cfg.DryRun,
		Verbose:     cfg.Verbose,
		ExecuteScan: scan,
		ExecuteCopy: copyFiles,
	})

	program = tea.NewProgram(model, tea.WithContext(ctx))

	final, err := program.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted) {
			printer.PrintCancelled()
			return nil
		}
		return appErrors.Wrap(appErrors.Internal, "tui", "", err)
	}

	if m, ok := final.(tui.Model); ok {
		if m.Err != nil {
			return m.Err
		}
		if m.Quitting && (m.Phase == tui.PhaseScanning || m.Phase == tui.PhaseCopying) {
			printer.PrintCancelled()
		}
	}
	return nil
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
