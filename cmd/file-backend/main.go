package main

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"

	filebackend "github.com/always-cache/file-backend"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	// CLI flags
	configFilenameFlag string
	rootFlag           string
	portFlag           int
	contentTypeFlag    string
	verbosityTraceFlag bool
	logFilenameFlag    string

	// this is set by goreleaser
	version string
)

func init() {
	flag.StringVar(&configFilenameFlag, "config", "", "Path to config file")
	flag.StringVar(&rootFlag, "root", "", "Directory to serve files from (overrides config)")
	flag.IntVar(&portFlag, "port", 0, "Port to listen on (overrides config)")
	flag.StringVar(&contentTypeFlag, "content-type", "", "Content type for all responses (overrides config)")
	flag.BoolVar(&verbosityTraceFlag, "vv", false, "Verbosity: trace logging")
	flag.StringVar(&logFilenameFlag, "log-file", "", "Log file to use (in addition to stdout)")

	if version == "" {
		version = "DEV"
	}
}

func main() {
	flag.Parse()

	// set log level
	logLevel := zerolog.DebugLevel
	if verbosityTraceFlag {
		logLevel = zerolog.TraceLevel
	}

	// set up log output to stdout
	// also output to logfile if specified
	logOutputs := make([]io.Writer, 0)
	logOutputs = append(logOutputs, zerolog.ConsoleWriter{Out: os.Stdout})
	if logFilenameFlag != "" {
		if logFileOutput, err := os.OpenFile(logFilenameFlag, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644); err != nil {
			log.Fatal().Err(err).Msg("Cannot open log file")
		} else {
			logOutputs = append(logOutputs, logFileOutput)
		}
	}
	multiWriter := zerolog.MultiLevelWriter(logOutputs...)
	log.Logger = log.Level(logLevel).Output(multiWriter).
		With().Str("version", version).Logger()

	config, err := getConfig(configFilenameFlag)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot read config")
	}

	// flags override config file and environment
	if rootFlag != "" {
		config.Root = rootFlag
	}
	if portFlag != 0 {
		config.Port = portFlag
	}
	if contentTypeFlag != "" {
		config.ContentType = contentTypeFlag
	}

	if config.Root == "" {
		log.Fatal().Msg("Please specify root directory")
	}
	if config.Optimize.Quality < 0 || config.Optimize.Quality > 100 {
		log.Fatal().Msgf("Optimize quality %v out of range 0-100", config.Optimize.Quality)
	}

	backend := filebackend.New(filebackend.Config{
		Root:        config.Root,
		ContentType: config.ContentType,
		Logger:      &log.Logger,
	})

	r := chi.NewRouter()
	if config.Optimize.Enabled {
		r.Get("/optimized/*", optimizeHandler(config.Root, config.Optimize.Quality, config.Optimize.Autofilter))
	}
	r.Handle("/*", backend)

	log.Info().Msgf("Serving %s on port %d", config.Root, config.Port)
	err = http.ListenAndServe(fmt.Sprintf(":%d", config.Port), r)

	if err != nil {
		panic(err)
	}
}
