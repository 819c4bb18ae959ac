package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/automoto/screenmenu/calibration"
	"github.com/automoto/screenmenu/pkg/logging"
	"github.com/automoto/screenmenu/server/core"
	"github.com/automoto/screenmenu/shared/protocol"
)

func newServeCmd() *cobra.Command {
	var (
		port     uint
		tickRate int
		logLevel string
		memory   bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the networked reference host",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}
			if cmd.Flags().Changed("tickrate") {
				cfg.Server.TickRate = tickRate
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Server.LogLevel = logLevel
			}
			if memory {
				cfg.Storage.Memory = true
			}
			logging.Init(logging.ParseLevel(cfg.Server.LogLevel), os.Stderr)

			if err := protocol.RegisterComponents(); err != nil {
				return err
			}

			store := calibration.OpenStore(cfg.Storage)
			server, err := core.NewServer(cfg, store)
			if err != nil {
				return err
			}

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
			go func() {
				<-sigChan
				logging.Info("main", "shutting down server")
				server.Stop()
				os.Exit(0)
			}()

			logging.Info("main", "starting screenmenu server on port %d (tick rate %d/s, menu type %s)",
				cfg.Server.Port, cfg.Server.TickRate, cfg.Settings.MenuType)
			return server.Start(cfg.Server.Port)
		},
	}

	cmd.Flags().UintVar(&port, "port", 7373, "server port")
	cmd.Flags().IntVar(&tickRate, "tickrate", 64, "server tick rate (updates per second)")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")
	cmd.Flags().BoolVar(&memory, "memory", false, "keep player positions in memory only")
	return cmd
}
