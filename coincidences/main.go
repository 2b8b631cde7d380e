package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	sqlx "github.com/jmoiron/sqlx"

	coincidence "github.com/gate-pet/coincidence_go/pkg"
)

var dbConn *sqlx.DB
var configuration coincidence.Configuration

var (
	logger         Logger
	VerbosityLevel int
)

func init() {
	opts := &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}
	handlerStdOut := NewHandler(os.Stdout, opts)
	handlerStdErr := slog.NewJSONHandler(os.Stderr, opts)
	logger = Logger{
		InfoLog:  slog.New(handlerStdOut),
		ErrorLog: slog.New(handlerStdErr),
	}
}

func main() {
	configFilename := flag.String("config", "", "Configuration file path")
	flag.Parse()

	var err error
	configuration, err = coincidence.LoadConfiguration(*configFilename)
	if err != nil {
		message := fmt.Errorf("Error reading configuration file: %w", err)
		logger.Error(message.Error())
		os.Exit(1)
	}
	coincidence.SetLogger(logger)

	VerbosityLevel = configuration.Verbosity
	if VerbosityLevel > 0 {
		message := fmt.Sprintf("Reading configuration file: %s", *configFilename)
		logger.Info(message, "main")
		printConfiguration(configuration, logger)
	}

	if !configuration.NoDB {
		dbConn, err = coincidence.ConnectToDatabase(configuration.User, configuration.Passwd, configuration.Host, configuration.DBName)
		if err != nil {
			message := fmt.Errorf("Error connecting to database: %w", err)
			logger.Error(message.Error())
			os.Exit(1)
		}
		defer dbConn.Close()

		geometry, err := coincidence.GetScannerFromDB(dbConn, configuration.RunNumber)
		if err != nil {
			message := fmt.Errorf("Error reading scanner geometry: %w", err)
			logger.Error(message.Error())
			os.Exit(1)
		}
		configuration.NModules = geometry.NModules
		configuration.RotationSpeed = geometry.RotationSpeed
	}
	coincidence.SetConfiguration(configuration)

	writer, err := coincidence.NewWriter(configuration.FileOut)
	if err != nil {
		message := fmt.Errorf("Error creating output file: %w", err)
		logger.Error(message.Error())
		os.Exit(1)
	}

	start := time.Now()
	summary, err := coincidence.GenerateCoincidences(writer)
	if err != nil {
		writer.Close()
		message := fmt.Errorf("Error generating coincidences: %w", err)
		logger.Error(message.Error())
		os.Exit(1)
	}

	if err := writer.Close(); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}

	duration := time.Since(start)
	message := fmt.Sprintf("%d coincidences written to %s in %d ms",
		summary.NCoincidences, configuration.FileOut, duration.Milliseconds())
	logger.Info(message, "main")
}

func printConfiguration(config coincidence.Configuration, logger Logger) {
	logger.Info(fmt.Sprintf("File in: %s", config.FileIn), "config")
	logger.Info(fmt.Sprintf("File out: %s", config.FileOut), "config")
	logger.Info(fmt.Sprintf("Input table: %s", config.InputTable), "config")
	logger.Info(fmt.Sprintf("Mode: %s", config.Mode), "config")
	logger.Info(fmt.Sprintf("Time window: %g ns", config.TimeWindowNs), "config")
	logger.Info(fmt.Sprintf("Min angle: %g deg", config.MinAngleDeg), "config")
	logger.Info(fmt.Sprintf("Rotating: %t", config.Rotating), "config")
	logger.Info(fmt.Sprintf("Rotation speed: %g deg/s", config.RotationSpeed), "config")
	logger.Info(fmt.Sprintf("Number of modules: %d", config.NModules), "config")
	logger.Info(fmt.Sprintf("Max events: %d", config.MaxEvents), "config")
	logger.Info(fmt.Sprintf("Run number: %d", config.RunNumber), "config")
	logger.Info(fmt.Sprintf("No DB: %t", config.NoDB), "config")
	logger.Info(fmt.Sprintf("Host: %s", config.Host), "config")
	logger.Info(fmt.Sprintf("DB name: %s", config.DBName), "config")
	logger.Info(fmt.Sprintf("Verbosity: %d", config.Verbosity), "config")
}
