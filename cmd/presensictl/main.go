package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"presensi_backend/internals/configs"
	database "presensi_backend/internals/databases"
	"presensi_backend/internals/seeds"
	"presensi_backend/internals/server"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "presensictl",
		Short:         "Alat operasional backend presensi",
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configs.LoadEnv()
		},
	}
	root.AddCommand(newServeCmd(), newMigrateCmd(), newSeedCmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Jalankan HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return server.Run(ctx, configs.Load())
		},
	}
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Buat/sesuaikan tabel presensi",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := database.ConnectDB(configs.Load())
			if err != nil {
				return err
			}
			defer database.Close(db)
			if err := database.AutoMigrate(db); err != nil {
				return fmt.Errorf("auto migrate: %w", err)
			}
			log.Println("✅ Migrasi selesai")
			return nil
		},
	}
}

func newSeedCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Isi roster siswa dari file JSON/YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := server.Bootstrap(configs.Load())
			if err != nil {
				return err
			}
			defer database.Close(db)

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return seeds.RunAllSeeds(ctx, db, file)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "path file roster (.json / .yaml)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
