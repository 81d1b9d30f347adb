package main

import (
	"log"
	"log/slog"
	"os"
	"ydlctl/cmd"
	"ydlctl/config"
	"ydlctl/internal/logging"
)

func main() {
	cnf, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration " + err.Error())
	}
	slog.SetDefault(logging.New(cnf.LogLevel, cnf.LogFile))
	if err := cmd.Execute(cnf); err != nil {
		log.Printf("Failed to execute command " + err.Error())
		os.Exit(1)
	}
}
