package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/shivamGupta-25/Webster.Shivaji/api"
	"github.com/shivamGupta-25/Webster.Shivaji/dynamo"
	"github.com/shivamGupta-25/Webster.Shivaji/events"
)

type ServerSettings struct {
	Host          string `env:"HOST" envDefault:"0.0.0.0"`
	Port          string `env:"PORT" envDefault:"8080"`
	Environment   string `env:"ENVIRONMENT" envDefault:"local"`
	TableName     string `env:"REGISTRATIONS_TABLE" envDefault:"webster-registrations"`
	FromAddress   string `env:"EMAIL_FROM_ADDRESS" envDefault:"noreply@websters-shivaji.com"`
	AllowedOrigin string `env:"ALLOWED_ORIGIN" envDefault:"https://websters-shivaji.com"`
}

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// .env is a local-dev convenience; in prod everything comes from the
	// real environment.
	_ = godotenv.Load()

	settings, err := env.ParseAs[ServerSettings]()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing settings from env: %s\n", err)
		os.Exit(1)
	}

	environment := api.PROD
	if settings.Environment == "local" {
		environment = api.LOCAL
	}

	logger := newLogger(environment)

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		logger.Error("Failed to load AWS config", "error", err)
		os.Exit(1)
	}

	db := dynamo.NewDB(dynamodb.NewFromConfig(awsCfg), settings.TableName)
	catalog := events.NewCatalog(events.DefaultCatalogTTL)

	emailSender, err := createEmailSender(awsCfg, logger, environment)
	if err != nil {
		logger.Error("Failed to create email sender", "error", err)
		os.Exit(1)
	}

	websterAPI := api.NewAPI(catalog, db, emailSender, logger, environment, settings.FromAddress, settings.AllowedOrigin)

	s := &http.Server{
		Handler: websterAPI.Handler(),
	}

	listener, err := net.Listen("tcp", net.JoinHostPort(settings.Host, settings.Port))
	if err != nil {
		logger.Error("Failed to listen", "error", err)
		os.Exit(1)
	}

	logger.Info("Starting server", "addr", listener.Addr().String(), "environment", settings.Environment)
	if err := serve(ctx, s, listener); err != nil {
		logger.Error("Server stopped", "error", err)
		os.Exit(1)
	}
	logger.Info("Server shut down")
}

// serve runs the server until it fails on its own or ctx is cancelled. On
// cancellation, in-flight requests get shutdownTimeout to finish before the
// server is torn down, so a registration that already hit the database can
// still return its token to the client.
func serve(ctx context.Context, s *http.Server, listener net.Listener) error {
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.Serve(listener)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.Shutdown(shutdownCtx)
}

func newLogger(environment api.Environment) *slog.Logger {
	if environment == api.LOCAL {
		return slog.New(slog.NewTextHandler(os.Stdout, nil))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, nil))
}
