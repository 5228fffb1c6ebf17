package server

import (
	"context"
	"fmt"
	"log"
	"time"

	"presensi_backend/internals/configs"
	database "presensi_backend/internals/databases"
	routes "presensi_backend/internals/route"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

// Bootstrap: connect + migrate + pool + warm-up.
func Bootstrap(cfg configs.App) (*gorm.DB, error) {
	db, err := database.ConnectDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		database.Close(db)
		return nil, fmt.Errorf("auto migrate: %w", err)
	}
	database.TunePool(db)
	database.WarmUpQueries(db)
	return db, nil
}

// NewRegistry: registry prometheus dengan collector runtime Go & proses.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// Run menjalankan HTTP server sampai ctx selesai, lalu shutdown dengan rapi.
func Run(ctx context.Context, cfg configs.App) error {
	db, err := Bootstrap(cfg)
	if err != nil {
		return err
	}
	defer database.Close(db)

	app := routes.NewApp(cfg, db, NewRegistry())

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	errCh := make(chan error, 1)
	go func() {
		log.Printf("✅ Listening on :%s", cfg.Port)
		errCh <- app.Listen("0.0.0.0:" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	log.Println("🛑 Shutdown...")
	sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return app.ShutdownWithContext(sctx)
}
