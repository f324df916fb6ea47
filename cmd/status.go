package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/organlabs/organon/internal/composition"
	"github.com/organlabs/organon/internal/log"
	"github.com/organlabs/organon/internal/presentation"
	"github.com/organlabs/organon/internal/pubsub"
	"github.com/organlabs/organon/internal/watcher"
)

var (
	statusSector     string
	statusActivate   []string
	statusDeactivate []string
	statusWatch      bool
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report the architecture status of a composition",
	Long: `Report the architecture status of a composition as JSON: tissue
completion, organ operational state, capability counts, and voice coverage.

The sector defaults to default_sector from config. Cells can be activated or
deactivated on top of the sector roster before the report is computed.

With --watch and an external catalog, the report is re-printed whenever the
catalog file changes on disk.

Examples:
  # Full retail status
  organon status --sector retail

  # Status with an extra cell activated
  organon status --sector retail --activate billing

  # Which organs are operational?
  organon status --sector retail | jq '.organs[] | select(.is_operational) | .name'

  # Re-report on every catalog edit
  organon status --sector retail --catalog ./catalog.yaml --watch`,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}
		defer eng.close(cmd.Context())

		ctx := cmd.Context()

		sector := statusSector
		if sector == "" {
			sector = cfg.DefaultSector
		}

		if err := applyMutations(ctx, eng, sector); err != nil {
			return err
		}
		if err := printStatus(ctx, eng); err != nil {
			return err
		}

		if !statusWatch {
			return nil
		}
		return watchStatus(ctx, eng, sector)
	},
}

func applyMutations(ctx context.Context, eng *engine, sector string) error {
	if sector != "" {
		if _, err := eng.session.InitializeForSector(ctx, sector); err != nil {
			return err
		}
	}
	for _, cellID := range statusActivate {
		if _, err := eng.session.ActivateCell(ctx, cellID); err != nil {
			return err
		}
	}
	for _, cellID := range statusDeactivate {
		eng.session.DeactivateCell(ctx, cellID)
	}
	return nil
}

func printStatus(ctx context.Context, eng *engine) error {
	arch := eng.session.ArchitectureStatus(ctx)
	formatter := presentation.NewFormatter(os.Stdout)
	return formatter.FormatArchitecture(presentation.FromArchitecture(arch))
}

// watchStatus blocks, reloading the catalog and re-reporting on every
// change until interrupted. Session lifecycle events and log entries are
// mirrored to stderr so the JSON stream on stdout stays clean.
func watchStatus(ctx context.Context, eng *engine, sector string) error {
	if eng.catalogs.Path() == "" {
		return fmt.Errorf("--watch requires an external catalog (--catalog or catalog_path)")
	}
	if !cfg.AutoReload {
		return fmt.Errorf("--watch requires auto_reload: true")
	}

	w, err := watcher.New(watcher.DefaultConfig(eng.catalogs.Path()))
	if err != nil {
		return err
	}
	defer func() { _ = w.Stop() }()

	onChange, err := w.Start()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	sessionEvents := eng.session.Subscribe(ctx)
	var logFeed <-chan log.LogEvent
	if !debug {
		// Under --debug the logger already writes to stderr directly.
		logFeed = log.Subscribe(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-sessionEvents:
			if !ok {
				sessionEvents = nil
				continue
			}
			fmt.Fprintln(os.Stderr, formatSessionEvent(ev))
		case entry, ok := <-logFeed:
			if !ok {
				logFeed = nil
				continue
			}
			fmt.Fprint(os.Stderr, entry.Payload)
		case <-onChange:
			if err := eng.reload(ctx); err != nil {
				log.ErrorErr(log.CatCatalog, "catalog reload failed, keeping previous catalog", err)
				continue
			}
			// Reload replaces the session, so follow the new broker.
			sessionEvents = eng.session.Subscribe(ctx)
			if err := applyMutations(ctx, eng, sector); err != nil {
				log.ErrorErr(log.CatComposition, "re-applying composition after reload failed", err)
				continue
			}
			if err := printStatus(ctx, eng); err != nil {
				return err
			}
		}
	}
}

// formatSessionEvent renders one composition lifecycle event as a single
// stderr line, e.g. "activated cell=billing" or "initialized sector=retail".
func formatSessionEvent(ev pubsub.Event[composition.Event]) string {
	if ev.Payload.CellID != "" {
		return fmt.Sprintf("%s cell=%s", ev.Type, ev.Payload.CellID)
	}
	return fmt.Sprintf("%s sector=%s", ev.Type, ev.Payload.SectorID)
}

func init() {
	statusCmd.Flags().StringVarP(&statusSector, "sector", "s", "", "Sector to initialize (default: default_sector from config)")
	statusCmd.Flags().StringArrayVar(&statusActivate, "activate", nil, "Cell to activate on top of the roster (repeatable)")
	statusCmd.Flags().StringArrayVar(&statusDeactivate, "deactivate", nil, "Cell to deactivate from the roster (repeatable)")
	statusCmd.Flags().BoolVarP(&statusWatch, "watch", "w", false, "Re-report whenever the catalog file changes")
	rootCmd.AddCommand(statusCmd)
}
