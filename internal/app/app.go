package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"intraeng/internal/config"
	"intraeng/internal/console"
	"intraeng/internal/logger"
	"intraeng/internal/ranking"
	"intraeng/internal/student"
)

type App struct {
	config   *config.Config
	logger   *slog.Logger
	ranking  *ranking.ClassRanking
	registry student.Registry
	console  *console.Handler
}

func New(cfg *config.Config) *App {
	slogLogger := logger.NewWithServiceContext(ServiceName, Version)

	// Set as default logger so slog.Info() uses the same handler
	slog.SetDefault(slogLogger)

	return NewWithLogger(cfg, slogLogger)
}

func NewWithLogger(cfg *config.Config, slogLogger *slog.Logger) *App {
	slogLogger.Info("initializing application", "env", cfg.Env)

	// One ranking per session, shared by every console command
	classRanking := ranking.New()
	for _, className := range cfg.Ranking.Classes {
		classRanking.AddPoints(className, 0)
	}

	registry := student.NewRegistry(slogLogger)

	app := &App{
		config:   cfg,
		logger:   slogLogger,
		ranking:  classRanking,
		registry: registry,
		console:  console.NewHandler(registry, classRanking, slogLogger, cfg.Console.Output),
	}

	slogLogger.Info("application initialized successfully", "preset_classes", len(cfg.Ranking.Classes))
	return app
}

// Menu runs the interactive loop; a nil in reads from the terminal.
func (a *App) Menu(ctx context.Context, in io.ReadCloser, out io.Writer) error {
	a.logger.InfoContext(ctx, "menu starting")
	return a.console.RunREPL(ctx, console.REPLConfig{
		Prompt:      a.config.Console.Prompt,
		HistoryFile: a.config.Console.HistoryFile,
	}, in, out)
}

// demoScript enrolls one valid and one under-age student, then scores two classes.
var demoScript = []string{
	`enroll age=17 code=1234567890 class="Engenharia Civil" name="Carlos Silva"`,
	`enroll age=15 code=1234567890 class="Engenharia Elétrica" name="Maria Oliveira"`,
	`points "Engenharia Civil" 100`,
	`points "Engenharia Mecânica" 80`,
	"ranking",
	"winner",
}

// Demo replays demoScript through the console, echoing each command.
func (a *App) Demo(ctx context.Context, out io.Writer) error {
	for _, line := range demoScript {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(out, "> %s\n", line); err != nil {
			return err
		}
		a.console.Execute(ctx, line, out)
	}
	return nil
}
