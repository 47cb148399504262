package client

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-shadow-sync/internal/codec"
	"github.com/MKhiriev/go-shadow-sync/internal/config"
	"github.com/MKhiriev/go-shadow-sync/internal/logger"
	"github.com/MKhiriev/go-shadow-sync/internal/service"
	"github.com/MKhiriev/go-shadow-sync/internal/shadow"
	"github.com/MKhiriev/go-shadow-sync/internal/store"
	"github.com/MKhiriev/go-shadow-sync/internal/transport"
	"github.com/MKhiriev/go-shadow-sync/internal/workers"
)

// App is a running device: an open shadow connection plus its background
// workers.
type App[T any] struct {
	conn     *shadow.Connection[T]
	storages *store.DeviceStorages
	workers  *workers.Workers

	logger *logger.Logger
}

// NewApp opens local storage and connects to the shadow store described by
// cfg. Extra options are applied after the ones derived from cfg.
func NewApp[T any](ctx context.Context, cfg *config.DeviceConfig, c codec.Codec[T], log *logger.Logger, opts ...shadow.Option[T]) (*App[T], error) {
	return newApp(ctx, cfg, transport.NewDialer(cfg.Endpoint, log), c, log, opts...)
}

func newApp[T any](ctx context.Context, cfg *config.DeviceConfig, dialer transport.Dialer, c codec.Codec[T], log *logger.Logger, opts ...shadow.Option[T]) (*App[T], error) {
	storages, err := store.NewDeviceStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create device storages: %w", err)
	}

	base := []shadow.Option[T]{
		shadow.WithLogger[T](log),
		shadow.WithStateTimeout[T](cfg.StateTimeout),
		shadow.WithRetryPolicy[T](retryPolicy(cfg.Endpoint)),
	}
	if storages.Snapshots != nil {
		base = append(base, shadow.WithSnapshotStore[T](storages.Snapshots, cfg.Endpoint.DeviceID))
	}

	conn, err := shadow.Connect(ctx, dialer, c, append(base, opts...)...)
	if err != nil {
		_ = storages.Close()
		return nil, err
	}

	app := &App[T]{
		conn:     conn,
		storages: storages,
		workers:  workers.New(),
		logger:   log,
	}
	if interval := cfg.Workers.ResyncInterval; interval > 0 {
		app.workers.Add(resyncWorker(conn, interval, log))
	}

	log.Info().Str("device_id", cfg.Endpoint.DeviceID).Msg("device app created")
	return app, nil
}

// Connection returns the shadow connection of the device.
func (a *App[T]) Connection() *shadow.Connection[T] {
	return a.conn
}

// Go registers an application worker. It must be called before Run.
func (a *App[T]) Go(w workers.Worker) {
	a.workers.Add(w)
}

// Run implements [Client].
func (a *App[T]) Run(ctx context.Context) error {
	defer a.close()

	a.logger.Info().Msg("device app running")
	if err := a.workers.Run(ctx); err != nil {
		return fmt.Errorf("device worker: %w", err)
	}
	<-ctx.Done()
	return nil
}

func (a *App[T]) close() {
	if err := a.conn.Close(); err != nil {
		a.logger.Err(err).Msg("error closing shadow connection")
	}
	if err := a.storages.Close(); err != nil {
		a.logger.Err(err).Msg("error closing device storages")
	}
	a.logger.Info().Msg("device app stopped")
}

func retryPolicy(cfg config.DeviceEndpoint) transport.RetryPolicy {
	p := transport.DefaultRetryPolicy()
	if cfg.RetryBaseDelay > 0 {
		p.Base = cfg.RetryBaseDelay
	}
	if cfg.RetryMaxDelay > 0 {
		p.Max = cfg.RetryMaxDelay
	}
	return p
}

// resyncWorker runs the resync job for the lifetime of the worker context.
func resyncWorker[T any](conn *shadow.Connection[T], interval time.Duration, log *logger.Logger) workers.Worker {
	job := service.NewResyncJob(service.RefreshFunc(func(ctx context.Context) error {
		_, err := conn.GetState(ctx)
		return err
	}), log)

	return workers.WorkerFunc(func(ctx context.Context) error {
		job.Start(ctx, interval)
		<-ctx.Done()
		job.Stop()
		return nil
	})
}
