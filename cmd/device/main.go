package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-shadow-sync/internal/client"
	"github.com/MKhiriev/go-shadow-sync/internal/codec"
	"github.com/MKhiriev/go-shadow-sync/internal/config"
	"github.com/MKhiriev/go-shadow-sync/internal/logger"
	"github.com/MKhiriev/go-shadow-sync/internal/shadow"
	"github.com/MKhiriev/go-shadow-sync/internal/workers"
	"github.com/MKhiriev/go-shadow-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const telemetryInterval = 10 * time.Second

// thermostat is the state this sample device synchronises.
type thermostat struct {
	Mode   string  `json:"mode"`
	Target float64 `json:"target"`
}

func main() {
	printBuildInfo()

	log := logger.NewLogger("device")
	cfg, err := config.GetDeviceConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log = logger.New(os.Stdout, "device", logger.ParseLevel(cfg.LogLevel)).
		WithStr("device_id", cfg.Endpoint.DeviceID)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := client.NewApp(ctx, cfg, codec.NewJSON[thermostat](), log,
		shadow.WithInitialState(thermostat{Mode: "off", Target: 20}),
		shadow.WithConnectionStatusHandler[thermostat](func(status models.ConnectionStatus, reason models.StatusReason) {
			log.Info().Stringer("status", status).Stringer("reason", reason).Msg("connection status changed")
		}),
		shadow.WithErrorHandler[thermostat](func(err error) {
			log.Warn().Err(err).Msg("shadow error")
		}),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("init device app error")
	}

	conn := app.Connection()
	conn.OnStateChange(func(state thermostat) {
		log.Info().Str("mode", state.Mode).Float64("target", state.Target).Msg("desired state changed")
		report(conn, state, log)
	})

	// the stream may have delivered the first twin before OnStateChange was set
	if state, err := conn.GetState(ctx); err != nil {
		log.Warn().Err(err).Msg("initial state fetch failed")
	} else {
		report(conn, state, log)
	}

	app.Go(workers.WorkerFunc(func(ctx context.Context) error {
		return telemetry(ctx, conn, log)
	}))

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("device run error")
	}
}

func report(conn *shadow.Connection[thermostat], state thermostat, log *logger.Logger) {
	if err := conn.SendReportState(state); err != nil {
		log.Err(err).Msg("report state")
	}
}

// telemetry publishes a simulated temperature reading every tick.
func telemetry(ctx context.Context, conn *shadow.Connection[thermostat], log *logger.Logger) error {
	t := time.NewTicker(telemetryInterval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			state := conn.State()
			reading := state.Target + rand.Float64()*2 - 1
			body := fmt.Sprintf(`{"temperature":%.2f}`, reading)
			if err := conn.SendMessage(body, models.Properties{"mode": state.Mode}); err != nil {
				log.Warn().Err(err).Msg("telemetry not queued")
			}
		}
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
