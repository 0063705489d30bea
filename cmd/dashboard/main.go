package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/paychain-dashboard/internal/mutation"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

type config struct {
	APIBaseURL  string        `long:"api-base-url" env:"PAYCHAIN_API_BASE_URL" description:"ledger service base URL" default:"http://127.0.0.1:8080"`
	HTTPTimeout time.Duration `long:"http-timeout" env:"PAYCHAIN_HTTP_TIMEOUT" description:"timeout of a single ledger request" default:"10s"`
	RPS         int           `long:"rps" env:"PAYCHAIN_RPS" description:"outbound ledger requests per second, 0 disables the limit" default:"50"`
	MetricsAddr string        `long:"metrics-addr" env:"PAYCHAIN_METRICS_ADDR" description:"address for metrics server" default:":2112"`
	HTTPAddr    string        `long:"http-addr" env:"PAYCHAIN_HTTP_ADDR" description:"address for the dashboard HTTP API" default:":8090"`
	GRPCAddr    string        `long:"grpc-addr" env:"PAYCHAIN_GRPC_ADDR" description:"address for the gRPC health service" default:":8091"`
	User        string        `long:"user" env:"PAYCHAIN_USER" description:"user whose balance is viewed" default:"alice"`
	From        string        `long:"from" env:"PAYCHAIN_FROM" description:"transfer sender" default:"alice"`
	To          string        `long:"to" env:"PAYCHAIN_TO" description:"transfer recipient" default:"bob"`
	Amount      int64         `long:"amount" env:"PAYCHAIN_AMOUNT" description:"transfer or faucet amount" default:"100"`
	LogJSON     bool          `long:"log-json" env:"PAYCHAIN_LOG_JSON" description:"emit production JSON logs"`

	Serve    struct{}        `command:"serve" description:"run the read model with HTTP, gRPC health and metrics servers"`
	Watch    struct{}        `command:"watch" description:"poll the ledger and print every refresh"`
	Transfer struct{}        `command:"transfer" description:"submit one transfer from the form flags"`
	Faucet   struct{}        `command:"faucet" description:"request one faucet grant for --user"`
	Balances balancesCommand `command:"balances" description:"query balances of several users at once"`
}

type balancesCommand struct {
	Workers int `long:"workers" description:"concurrent balance requests" default:"4"`
	Args    struct {
		Users []string `positional-arg-name:"user" required:"1"`
	} `positional-args:"yes"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	parser := flags.NewParser(&cfg, flags.Default)
	if _, err := parser.ParseArgs(os.Args[1:]); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		os.Exit(2)
	}

	logger, err := newLogger(cfg.LogJSON)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(ctx, parser.Active.Name, cfg, logger); err != nil {
		logger.Fatal("dashboard failed", zap.String("command", parser.Active.Name), zap.Error(err))
	}
}

func newLogger(json bool) (*zap.Logger, error) {
	if json {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func run(ctx context.Context, command string, cfg config, logger *zap.Logger) error {
	a, err := newApp(cfg, logger)
	if err != nil {
		return err
	}

	switch command {
	case "serve":
		return runServe(ctx, a)
	case "watch":
		return runWatch(ctx, a, os.Stdout)
	case "transfer":
		return runMutation(ctx, a, mutation.Transfer, os.Stdout)
	case "faucet":
		return runMutation(ctx, a, mutation.Faucet, os.Stdout)
	case "balances":
		return runBalances(ctx, a, cfg.Balances.Workers, cfg.Balances.Args.Users, os.Stdout)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}
