package main

import (
	"fmt"
	"net"
	"net/http"

	"github.com/spf13/cobra"

	"timesheet/internal/config"
	"timesheet/internal/httpapi"
)

const envListenAddr = "TIMESHEET_ADDR"

func newServeCommand(opts *rootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the timesheet web service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fileConfig, err := opts.loadFileConfig(cmd)
			if err != nil {
				return err
			}
			return serve(fileConfig, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides "+envListenAddr+" and the config file)")
	return cmd
}

func serve(fileConfig config.FileConfig, addrFlag string) error {
	runtimeConfig, err := loadRuntimeConfig(fileConfig.Server)
	if err != nil {
		return fmt.Errorf("failed to load runtime config: %w", err)
	}

	logStartupWarnings(runtimeConfig, logPrintf)
	addr := listenAddr(addrFlag, fileConfig.Server, runtimeConfig.Mode)

	router, err := makeRouter(runtimeConfig)
	if err != nil {
		return fmt.Errorf("failed to initialize router: %w", err)
	}

	err = runServer(addr, router, func(server *http.Server, listener net.Listener) error {
		return server.Serve(listener)
	}, logPrintf)
	if err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// listenAddr resolves the address from the flag, then the environment, then
// the config file, then the mode default.
func listenAddr(flagValue string, server config.ServerConfig, mode httpapi.RuntimeMode) string {
	if flagValue != "" {
		return flagValue
	}
	fallback := httpapi.DefaultListenAddr(mode)
	if server.Addr != nil && *server.Addr != "" {
		fallback = *server.Addr
	}
	return getenv(envListenAddr, fallback)
}

func logStartupWarnings(runtimeConfig httpapi.RuntimeConfig, logger func(string, ...any)) {
	if logger == nil || !runtimeConfig.Mode.IsDevelopment() {
		return
	}

	logger("WARNING: timesheet is running in development mode")
	logger("WARNING: development mode enables permissive CORS defaults")
	logger("WARNING: the viewer selector is not authentication, do not expose this service to untrusted networks")
}
