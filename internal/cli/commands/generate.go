package commands

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/lookgen/internal/cli/config"
	"github.com/leapstack-labs/lookgen/internal/cli/output"
	"github.com/leapstack-labs/lookgen/internal/generator"
	"github.com/leapstack-labs/lookgen/internal/loader"
	"github.com/leapstack-labs/lookgen/internal/writer"
	"github.com/leapstack-labs/lookgen/pkg/core"
	"github.com/leapstack-labs/lookgen/pkg/lookml"
)

// GenerateOptions holds options for the generate command.
type GenerateOptions struct {
	Watch bool
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand() *cobra.Command {
	opts := &GenerateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate LookML views from compiled dbt metadata",
		Long: `Read manifest.json and catalog.json from the dbt target directory and
write one LookML view file per documented model, plus a model file for
every explore declared in looker meta blocks.

The run never aborts on a single bad model: structural problems are
reported as diagnostics and the remaining views are still written.`,
		Example: `  # Generate views for the dbt project in the current directory
  lookgen generate

  # Generate from another project, into a custom output directory
  lookgen generate --project-dir ~/analytics --target-dir ~/analytics/target --output-dir ./lookml

  # Only models tagged prod
  lookgen generate --tag prod

  # Regenerate whenever dbt recompiles
  lookgen generate --watch`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := ConfigFromContext(cmd.Context())
			log := LoggerFromContext(cmd.Context())
			if opts.Watch {
				return runWatch(cmd, cfg, log)
			}
			return runGenerate(cmd, cfg, log)
		},
	}
	cmd.Flags().BoolVar(&opts.Watch, "watch", false, "Regenerate whenever the dbt target directory changes")
	return cmd
}

func runGenerate(cmd *cobra.Command, cfg *config.Config, log *slog.Logger) error {
	manifest, err := loader.LoadManifest(cfg.TargetDir)
	if err != nil {
		return err
	}
	catalog, err := loader.LoadCatalog(cfg.TargetDir)
	if err != nil {
		return err
	}
	project, err := loader.LoadProject(cfg.ProjectDir)
	if err != nil {
		return err
	}

	eng, err := generator.New(manifest.Metadata.AdapterType, generator.WithLogger(log))
	if err != nil {
		return err
	}

	models, diags := loader.BuildModels(manifest, catalog, cfg.Tag)
	views, gdiags := eng.Generate(models)
	diags = append(diags, gdiags...)

	files := make([]writer.File, 0, len(views)+len(models))
	byID := make(map[string]*core.Model, len(models))
	for _, m := range models {
		byID[m.UniqueID] = m
	}
	for id, view := range views {
		files = append(files, writer.File{
			Path:     filepath.Join("views", lookml.ViewFileName(view.Name)),
			Contents: lookml.Marshal(view),
		})

		m := byID[id]
		// Generate already reported this model's annotation problems;
		// collecting them again here would print each warning twice.
		explore, _ := eng.Explore(m, project.Name)
		files = append(files, writer.File{
			Path:     lookml.ModelFileName(explore.Name),
			Contents: lookml.MarshalModel(explore),
		})
	}

	if err := writer.Write(cfg.OutputDir, files); err != nil {
		return err
	}

	renderer := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.Format))
	return renderer.Render(&output.Summary{
		RunID:       uuid.NewString(),
		Dialect:     eng.Dialect().Name,
		Views:       len(views),
		Models:      len(models),
		OutputDir:   cfg.OutputDir,
		Diagnostics: diags,
	})
}

// runWatch regenerates on every change to the compiled dbt artifacts. Each
// change triggers a full run; there is no incremental state between runs.
func runWatch(cmd *cobra.Command, cfg *config.Config, log *slog.Logger) error {
	if err := runGenerate(cmd, cfg, log); err != nil {
		log.Error("generation failed", "error", err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer w.Close()
	if err := w.Add(cfg.TargetDir); err != nil {
		return fmt.Errorf("watching %s: %w", cfg.TargetDir, err)
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)

	log.Info("watching for changes", "dir", cfg.TargetDir)
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			name := filepath.Base(ev.Name)
			if name != "manifest.json" && name != "catalog.json" {
				continue
			}
			log.Info("artifact changed, regenerating", "file", name)
			if err := runGenerate(cmd, cfg, log); err != nil {
				log.Error("generation failed", "error", err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Error("watch error", "error", err)
		case <-interrupt:
			return nil
		case <-cmd.Context().Done():
			return nil
		}
	}
}
