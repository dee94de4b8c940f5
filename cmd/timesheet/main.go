package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"timesheet/internal/httpapi"
)

var (
	runServer          = run
	makeRouter         = httpapi.NewRouter
	loadRuntimeConfig  = httpapi.LoadRuntimeConfig
	logPrintf          = slogPrintf
	exitProcess        = os.Exit
	signalNotify       = signal.Notify
	signalStop         = signal.Stop
	newShutdownContext = context.WithTimeout
)

func main() {
	if err := execute(os.Args[1:]); err != nil {
		logPrintf("%v", err)
		exitProcess(1)
		return
	}
}

func execute(args []string) error {
	rootCmd := newRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func slogPrintf(format string, args ...any) {
	slog.Info(fmt.Sprintf(format, args...))
}

func getenv(key, fallback string) string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}

	return value
}
