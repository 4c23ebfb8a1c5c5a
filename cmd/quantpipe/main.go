package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/quantpipe/quantpipe/internal/config"
	"github.com/quantpipe/quantpipe/internal/exchange"
	"github.com/quantpipe/quantpipe/internal/logger"
	"github.com/quantpipe/quantpipe/internal/params"
	"github.com/quantpipe/quantpipe/internal/pipeline"
	"github.com/quantpipe/quantpipe/internal/scheduler"
	"github.com/quantpipe/quantpipe/internal/steps"
	"github.com/quantpipe/quantpipe/internal/store/duckdb"
	"github.com/quantpipe/quantpipe/internal/store/postgres"
	"github.com/quantpipe/quantpipe/internal/trading"
	"github.com/quantpipe/quantpipe/internal/types"
	"github.com/quantpipe/quantpipe/internal/version"
)

// runAction loads the configuration, wires the stores and the exchange, and
// runs every configured pipeline until interrupted.
func runAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return err
	}

	log, err := logger.NewLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	store, err := postgres.NewStore(ctx, cfg.Database.URL, log)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Migrate(ctx); err != nil {
		return err
	}

	candles, err := duckdb.NewCandleStore(cfg.Candles.Path, log)
	if err != nil {
		return err
	}
	defer candles.Close()

	var orderExecutor trading.OrderExecutor

	switch cfg.Exchange.Mode {
	case config.ExchangeModeBinance:
		orderExecutor = exchange.NewBinanceExecutor(cfg.Exchange.Binance, log)
	default:
		orderExecutor = exchange.NewPaperExecutor()
	}

	executor := trading.NewLiveTradeExecutor(orderExecutor, store, log)

	deps := pipeline.Dependencies{
		Logger:    log,
		Candles:   candles,
		Positions: store,
		Executor:  executor,
	}

	registry := steps.NewDefaultRegistry()

	pipelines := make([]scheduler.Pipeline, 0, len(cfg.Pipelines))

	for _, p := range cfg.Pipelines {
		built, buildErrs := pipeline.BuildSteps(registry, deps, p.Steps)
		if len(buildErrs) > 0 {
			for _, buildErr := range buildErrs {
				for _, validationErr := range buildErr.Errors {
					log.Error("invalid step parameter",
						zap.Int64("pipeline_id", p.ID),
						zap.String("step", buildErr.StepKey),
						zap.String("parameter", validationErr.Key),
						zap.String("reason", validationErr.Message),
					)
				}
			}

			return fmt.Errorf("pipeline %d has invalid step configuration", p.ID)
		}

		pipelines = append(pipelines, scheduler.Pipeline{
			ID:             p.ID,
			Symbol:         p.Symbol,
			Market:         p.Market,
			Interval:       p.Interval.Std(),
			PriceTimeframe: p.PriceTimeframe,
			Steps:          built,
		})
	}

	runner := pipeline.NewRunner(log, store)
	sched := scheduler.New(log, candles, runner)

	log.Info("starting pipelines", zap.Int("count", len(pipelines)))

	sched.Run(ctx, pipelines)

	return nil
}

// stepsAction lists the registered step kinds, or prints one kind's
// parameter schema as JSON Schema.
func stepsAction(ctx context.Context, cmd *cli.Command) error {
	registry := steps.NewDefaultRegistry()

	if key := cmd.String("schema"); key != "" {
		def, found := registry.TryFind(key)
		if !found {
			return fmt.Errorf("unknown step kind: %s", key)
		}

		schema, err := params.ToJSONSchema(def.Name, def.Params)
		if err != nil {
			return err
		}

		fmt.Println(schema)

		return nil
	}

	for _, def := range registry.All() {
		fmt.Printf("%-16s %-10s %s\n", def.Key, def.Category, def.Description)
	}

	return nil
}

// importAction loads a CSV candle file into the DuckDB candle store.
func importAction(ctx context.Context, cmd *cli.Command) error {
	log, err := logger.NewLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	candles, err := duckdb.NewCandleStore(cmd.String("data"), log)
	if err != nil {
		return err
	}
	defer candles.Close()

	imported, err := candles.ImportCSV(ctx,
		cmd.String("file"),
		cmd.String("symbol"),
		types.MarketType(cmd.String("market")),
		types.Timeframe(cmd.String("timeframe")),
		true,
	)
	if err != nil {
		return err
	}

	fmt.Printf("\nImported %d candles\n", imported)

	return nil
}

func main() {
	cmd := &cli.Command{
		Name:    "quantpipe",
		Usage:   "Configurable trading pipeline engine",
		Version: version.GetVersion(),
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "Run the configured pipelines",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "config",
						Aliases:  []string{"c"},
						Usage:    "Path to the YAML configuration file",
						Required: true,
					},
				},
				Action: runAction,
			},
			{
				Name:  "steps",
				Usage: "List step kinds or print a kind's parameter schema",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "schema",
						Usage: "Print the JSON schema of the given step kind",
					},
				},
				Action: stepsAction,
			},
			{
				Name:  "import",
				Usage: "Import CSV candles into the candle store",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Usage:    "Path to the CSV file",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "data",
						Aliases:  []string{"d"},
						Usage:    "Path to the DuckDB candle database",
						Value:    "data/candles.db",
						Required: false,
					},
					&cli.StringFlag{
						Name:     "symbol",
						Aliases:  []string{"s"},
						Usage:    "Symbol the candles belong to",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "market",
						Usage:    "Market type (SPOT or FUTURES)",
						Value:    string(types.MarketTypeSpot),
						Required: false,
					},
					&cli.StringFlag{
						Name:     "timeframe",
						Aliases:  []string{"t"},
						Usage:    "Candle timeframe (1m, 5m, 15m, 1h, 4h, 1d)",
						Value:    string(types.TimeframeOneHour),
						Required: false,
					},
				},
				Action: importAction,
			},
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}
