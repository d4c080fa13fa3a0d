package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/theo886/weekly-time-allocation/internal/config"
	"github.com/theo886/weekly-time-allocation/internal/editor"
	"github.com/theo886/weekly-time-allocation/internal/models"
	"github.com/theo886/weekly-time-allocation/internal/router"
	"gopkg.in/natefinch/lumberjack.v2"
)

// This is set at build time with -ldflags "-X main.version=...".
var version = "0.0.0"

// @title						Weekly Time Allocation
// @description				The backend for tracking how working time is split across projects each week.
// @BasePath					/
func main() {
	if err := config.LoadEnv(); err != nil {
		log.Fatal().Msg(err.Error())
	}

	cfg, command, err := config.Parse(os.Args[1:], version)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	if command == config.CommandCheckEnv {
		if err := cfg.CheckEnv(os.Stdout); err != nil {
			log.Fatal().Msg(err.Error())
		}
		return
	}

	// gin uses debug as the default mode, we use release for
	// security reasons
	gin.SetMode(cfg.GinMode)

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	output := io.Writer(os.Stdout)
	if (cfg.LogFormat == "" && gin.IsDebugging()) || cfg.LogFormat == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	// Rotated log file, always JSON
	if cfg.LogFile != "" {
		output = io.MultiWriter(output, &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		})
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	if err := cfg.Export(); err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Connect to the database
	if cfg.Postgres() {
		err = models.ConnectPostgres(models.PostgresDSN(cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName))
	} else {
		err = os.MkdirAll(cfg.DataDir, os.ModePerm)
		if err != nil {
			log.Fatal().Msg(err.Error())
		}

		err = models.Connect(filepath.Join(cfg.DataDir, "gorm.db"))
	}
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	err = models.SeedProjects()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	r, teardown, err := router.Config(cfg.APIURL)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer teardown()

	basePath := cfg.APIURL.Path
	if basePath == "" {
		basePath = "/"
	}
	// Editor sessions are stored as timesheets when submitted
	router.AttachRoutes(r.Group(basePath), editor.NewRegistry(models.TimesheetStore{}))

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Error().Msg(err.Error())
	}
}
