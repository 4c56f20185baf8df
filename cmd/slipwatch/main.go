package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/mattjessup/slipwatch/internal/analyzer"
	"github.com/mattjessup/slipwatch/internal/calendar"
	"github.com/mattjessup/slipwatch/internal/cli"
	"github.com/mattjessup/slipwatch/internal/db"
	"github.com/mattjessup/slipwatch/internal/intelligence"
	"github.com/mattjessup/slipwatch/internal/llm"
	"github.com/mattjessup/slipwatch/internal/repository"
	"github.com/mattjessup/slipwatch/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// DB path: env var or default ~/.slipwatch/slipwatch.db
	dbPath := os.Getenv("SLIPWATCH_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".slipwatch", "slipwatch.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	planRepo := repository.NewSQLitePlanRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	var svcObserver service.UseCaseObserver = service.NoopUseCaseObserver{}
	if os.Getenv("SLIPWATCH_LOG") == "true" {
		svcObserver = service.NewLogUseCaseObserver(os.Stderr)
	}

	planSvc := service.NewPlanService(uow, planRepo, nil, svcObserver)

	// The keyword resolver is always available; the LLM resolver wraps it
	// as a fallback when enabled.
	var (
		resolver intelligence.Resolver = intelligence.NewKeywordResolver(nil)
		narrator intelligence.Narrator = intelligence.StaticNarrator{}
	)

	llmCfg := llm.LoadConfig()
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		client := llm.NewOpenRouterClient(llmCfg, observer)
		resolver = intelligence.NewLLMResolver(client, resolver, llmCfg.ConfidenceThreshold)
		narrator = intelligence.NewLLMNarrator(client)
	}

	cal := calendar.NewUSFederal()
	engine := analyzer.New(cal)
	analysisSvc := service.NewAnalysisService(resolver, narrator, engine, planSvc, nil, svcObserver)

	app := &cli.App{
		Plans:      planSvc,
		Analysis:   analysisSvc,
		Calendar:   cal,
		LLMEnabled: llmCfg.Enabled,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	return cli.NewRootCmd(app).Execute()
}
