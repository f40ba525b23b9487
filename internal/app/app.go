package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/kintree"
	"github.com/vk/kintree/internal/ctxlog"
	"github.com/vk/kintree/tree"
)

// App encapsulates the tool's dependencies, configuration, and lifecycle.
// Reports go to outW; logs go to errW so machine-readable output stays clean.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
}

// New is the constructor for the tool. It returns a fully initialized App
// instance with its own isolated logger.
func New(outW, errW io.Writer, config *Config) *App {
	logger := newLogger(config.LogLevel, config.LogFormat, errW)
	logger.Debug("Logger configured successfully.")
	return &App{outW: outW, logger: logger, config: config}
}

// Run loads the configured model file and writes the requested report.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("Loading model file.", "path", a.config.ModelPath)

	sys, err := kintree.LoadFile(ctx, a.config.ModelPath)
	if err != nil {
		return fmt.Errorf("failed to load model %s: %w", a.config.ModelPath, err)
	}
	a.logger.Info("Model loaded.", "model", sys.Model, "links", sys.NumLinks())

	switch a.config.Output {
	case OutputJSON:
		enc := json.NewEncoder(a.outW)
		enc.SetIndent("", "  ")
		return enc.Encode(sys)
	default:
		return a.writeSummary(sys)
	}
}

// writeSummary prints a human-readable view of the flattened tree.
func (a *App) writeSummary(sys *tree.System) error {
	fmt.Fprintf(a.outW, "model %q: %d links, dt=%g, gravity=[%g %g %g]\n",
		sys.Model, sys.NumLinks(), sys.Options.Dt,
		sys.Options.Gravity[0], sys.Options.Gravity[1], sys.Options.Gravity[2])
	for i := range sys.Parents {
		dof, _ := sys.JointTypes[i].DOF()
		fmt.Fprintf(a.outW, "  link %d %q: parent=%d joint=%s dof=%d geoms=%d\n",
			i, sys.Names[i], sys.Parents[i], sys.JointTypes[i], dof, len(sys.Geoms[i]))
	}
	return nil
}
