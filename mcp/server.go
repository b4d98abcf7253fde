// Package mcp wires the calendrical engines into an MCP server with stdio
// and streamable-HTTP transports.
package mcp

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/AngusHsu/lunar-mcp-server/lunar/auspicious"
	"github.com/AngusHsu/lunar-mcp-server/lunar/festival"
	"github.com/AngusHsu/lunar-mcp-server/mcp/internal/handlers"
)

// Config holds all server settings, parsed from LUNAR_MCP_* environment
// variables.
type Config struct {
	ServerName       string        `envconfig:"SERVER_NAME" default:"lunar-mcp-server"`
	ServerVersion    string        `envconfig:"SERVER_VERSION" default:"1.0.0"`
	LogLevel         string        `envconfig:"LOG_LEVEL" default:"info"`
	HTTPAddr         string        `envconfig:"HTTP_ADDR" default:":11547"`
	ShutdownTimeout  time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	HTTPReadTimeout  time.Duration `envconfig:"HTTP_READ_TIMEOUT" default:"5s"`
	HTTPIdleTimeout  time.Duration `envconfig:"HTTP_IDLE_TIMEOUT" default:"120s"`
	HeartbeatSeconds int           `envconfig:"HEARTBEAT_SECONDS" default:"30"`
}

// LoadConfig parses configuration from the environment.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("LUNAR_MCP", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) initLogger() {
	zerolog.SetGlobalLevel(parseLogLevel(c.LogLevel))
	log.Logger = log.With().Caller().Logger()
}

func parseLogLevel(levelStr string) zerolog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

type toolRegisterer interface {
	RegisterTools(s *server.MCPServer) error
}

func registerHandler(s *server.MCPServer, handler toolRegisterer, name string) error {
	if err := handler.RegisterTools(s); err != nil {
		return fmt.Errorf("register %s tools: %w", name, err)
	}
	return nil
}

// NewServer builds the MCP server with every tool family registered. Split
// out of Run so tests can drive it over an in-process transport.
func NewServer(cfg *Config) (*server.MCPServer, error) {
	catalog, err := festival.Load()
	if err != nil {
		return nil, err
	}
	engine := auspicious.NewEngine()

	s := server.NewMCPServer(
		cfg.ServerName,
		cfg.ServerVersion,
		server.WithToolCapabilities(true),
	)

	registrations := []struct {
		name    string
		handler toolRegisterer
	}{
		{"moon", handlers.NewMoonHandler()},
		{"calendar", handlers.NewCalendarHandler()},
		{"festival", handlers.NewFestivalHandler(catalog)},
		{"auspicious", handlers.NewAuspiciousHandler(engine)},
	}
	for _, r := range registrations {
		if err := registerHandler(s, r.handler, r.name); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Run starts the MCP server, auto-detecting the transport, and blocks until
// shutdown.
func Run() error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	cfg.initLogger()

	s, err := NewServer(cfg)
	if err != nil {
		log.Error().Err(err).Msg("failed to build MCP server")
		return err
	}

	if shouldUseStdio() {
		log.Info().Msg("starting lunar MCP server (stdio transport)")
		return server.ServeStdio(s)
	}

	log.Info().Str("addr", cfg.HTTPAddr).Msg("starting lunar MCP server (streamable HTTP)")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	shutdownComplete := make(chan struct{})

	streamSrv := server.NewStreamableHTTPServer(
		s,
		server.WithEndpointPath("/mcp"),
		server.WithHeartbeatInterval(time.Duration(cfg.HeartbeatSeconds)*time.Second),
	)

	srv := &http.Server{
		Addr:        cfg.HTTPAddr,
		Handler:     streamSrv,
		ReadTimeout: cfg.HTTPReadTimeout,
		// WriteTimeout stays zero: SSE streams must not be deadlined.
		IdleTimeout: cfg.HTTPIdleTimeout,
	}

	go func() {
		defer close(shutdownComplete)

		sig := <-sigChan
		log.Info().Str("signal", sig.String()).Msg("received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("error during HTTP server shutdown")
		}
		if err := streamSrv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("error during MCP server shutdown")
		}
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	<-shutdownComplete
	log.Info().Msg("lunar MCP server shutdown complete")
	return nil
}

// shouldUseStdio picks the transport: explicit env overrides first, then
// stdio whenever stdin is not a terminal (launched by a host process).
func shouldUseStdio() bool {
	if os.Getenv("MCP_STDIO") == "true" {
		return true
	}
	if os.Getenv("MCP_HTTP") == "true" {
		return false
	}
	if fileInfo, err := os.Stdin.Stat(); err == nil {
		return (fileInfo.Mode() & os.ModeCharDevice) == 0
	}
	return false
}
