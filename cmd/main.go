package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/joho/godotenv"
	"github.com/zero-defect-summit/event-registration/api"
	"github.com/zero-defect-summit/event-registration/dynamo"
	"github.com/zero-defect-summit/event-registration/events"
	"github.com/zero-defect-summit/event-registration/ratelimit"
	"github.com/zero-defect-summit/event-registration/razorpay"
)

const shutdownTimeout = 30 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	env, err := api.ParseEnvironment(getEnvOrDefault("ENV", "LOCAL"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid ENV: %s\n", err)
		os.Exit(1)
	}

	if env == api.LOCAL {
		if err := godotenv.Load(); err != nil {
			fmt.Fprintln(os.Stderr, "No .env file loaded, using process environment")
		}
	}

	logger := newLogger(env)

	if err := run(ctx, env, logger); err != nil {
		logger.Error("Server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, env api.Environment, logger *slog.Logger) error {
	awsCfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return fmt.Errorf("failed to get aws config: %w", err)
	}

	settings, err := getServerSettingsFromEnv(ctx, ssm.NewFromConfig(awsCfg))
	if err != nil {
		return err
	}

	db := dynamo.Open(awsCfg, settings.TableName, settings.DynamoEndpoint)
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close dynamo", slog.String("error", err.Error()))
		}
	}()

	app := api.NewAPI(
		db,
		logger,
		env,
		razorpay.NewClient(settings.RazorpayKeyID, settings.RazorpayKeySecret, settings.RazorpayBaseURL),
		razorpay.NewWebhookVerifier(settings.RazorpayWebhookSecret),
		createEmailSender(awsCfg, logger, env),
		ratelimit.NewLimiter(ratelimit.DefaultLimit, ratelimit.DefaultWindow),
		api.Settings{
			Workshop:         events.ZeroDefectSummit,
			AllowedOrigins:   settings.AllowedOrigins,
			AdminAPIKey:      settings.AdminAPIKey,
			EmailFromAddress: settings.EmailFromAddress,
		},
	)

	handler, err := app.Handler()
	if err != nil {
		return err
	}

	s := &http.Server{
		Handler:           handler,
		Addr:              net.JoinHostPort(settings.Host, settings.Port),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	warnMissingSecrets(logger, settings)

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Starting server", slog.String("addr", s.Addr), slog.String("env", env.String()))
		serverErr <- s.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err = s.Shutdown(shutdownCtx)
	if err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	return nil
}

func newLogger(env api.Environment) *slog.Logger {
	if env == api.LOCAL {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, nil))
}

// warnMissingSecrets names unset secrets without logging any values.
func warnMissingSecrets(logger *slog.Logger, settings ServerSettings) {
	missing := map[string]bool{
		"RAZORPAY_KEY_ID":         settings.RazorpayKeyID == "",
		"RAZORPAY_KEY_SECRET":     settings.RazorpayKeySecret == "",
		"RAZORPAY_WEBHOOK_SECRET": settings.RazorpayWebhookSecret == "",
		"ADMIN_API_KEY":           settings.AdminAPIKey == "",
	}
	for key, isMissing := range missing {
		if isMissing {
			logger.Warn("Secret not configured", slog.String("key", key))
		}
	}
}

type ServerSettings struct {
	Host string
	Port string

	TableName      string
	DynamoEndpoint string

	RazorpayKeyID         string
	RazorpayKeySecret     string
	RazorpayWebhookSecret string
	RazorpayBaseURL       string

	AllowedOrigins   []string
	AdminAPIKey      string
	EmailFromAddress string
}

func getServerSettingsFromEnv(ctx context.Context, secrets parameterGetter) (ServerSettings, error) {
	settings := ServerSettings{
		Host:             getEnvOrDefault("HOST", "0.0.0.0"),
		Port:             getEnvOrDefault("PORT", "8080"),
		TableName:        getEnvOrDefault("DYNAMO_TABLE_NAME", "WorkshopRegistration"),
		DynamoEndpoint:   getEnvOrDefault("DYNAMO_ENDPOINT", ""),
		RazorpayBaseURL:  getEnvOrDefault("RAZORPAY_BASE_URL", razorpay.DefaultBaseURL),
		AllowedOrigins:   splitList(getEnvOrDefault("ALLOWED_ORIGINS", "https://zero-defect-summit.vercel.app")),
		EmailFromAddress: getEnvOrDefault("EMAIL_FROM_ADDRESS", "Zero Defect Summit <info@zerodefectsummit.in>"),
	}

	secretFields := []struct {
		key   string
		field *string
	}{
		{"RAZORPAY_KEY_ID", &settings.RazorpayKeyID},
		{"RAZORPAY_KEY_SECRET", &settings.RazorpayKeySecret},
		{"RAZORPAY_WEBHOOK_SECRET", &settings.RazorpayWebhookSecret},
		{"ADMIN_API_KEY", &settings.AdminAPIKey},
	}
	for _, s := range secretFields {
		v, err := resolveSecret(ctx, secrets, s.key)
		if err != nil {
			return ServerSettings{}, err
		}
		*s.field = v
	}

	return settings, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnvOrDefault(key string, defaultVal string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}

	return defaultVal
}
