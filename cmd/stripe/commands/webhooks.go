package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/stripe-client/internal/constants"
	"github.com/fivetwenty-io/stripe-client/internal/natsbus"
	"github.com/fivetwenty-io/stripe-client/pkg/stripe"
	"github.com/fivetwenty-io/stripe-client/pkg/webhook"
)

// Listener timeouts.
const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 10 * time.Second
	natsTimeout       = 5 * time.Second
)

// NewWebhooksCommand creates the webhooks command group.
func NewWebhooksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "webhooks",
		Aliases: []string{"webhook", "wh"},
		Short:   "Receive and verify webhook events",
		Long:    "Run a webhook endpoint, verify signed payloads and sign test payloads",
	}

	cmd.AddCommand(newWebhooksListenCommand())
	cmd.AddCommand(newWebhooksVerifyCommand())
	cmd.AddCommand(newWebhooksSignCommand())

	return cmd
}

// webhookSecret returns the flag value, or the configured secret.
func webhookSecret(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}

	if secret := viper.GetString("webhook_secret"); secret != "" {
		return secret, nil
	}

	return "", constants.ErrWebhookSecretNeeded
}

// NewWebhookRouter mounts handler at path and adds a health endpoint.
func NewWebhookRouter(path string, handler http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, "ok\n")
	})
	r.Post(path, handler.ServeHTTP)

	return r
}

// eventPrinter is a sink that writes one line per event.
type eventPrinter struct {
	mutex sync.Mutex
	w     io.Writer
}

func (p *eventPrinter) Deliver(_ context.Context, event *stripe.Event) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	row := eventRow(*event)

	_, err := fmt.Fprintf(p.w, "%s  %s  %s  %s %s\n", row[4], row[0], row[1], row[2], row[3])
	if err != nil {
		return fmt.Errorf("failed to print event %s: %w", event.ID, err)
	}

	return nil
}

// fanOut delivers to every sink in order and stops at the first failure.
type fanOut []webhook.Sink

func (f fanOut) Deliver(ctx context.Context, event *stripe.Event) error {
	for _, sink := range f {
		err := sink.Deliver(ctx, event)
		if err != nil {
			return err
		}
	}

	return nil
}

func newWebhooksListenCommand() *cobra.Command {
	var (
		addr          string
		path          string
		secret        string
		natsURL       string
		subjectPrefix string
		tolerance     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "listen",
		Short: "Run a webhook endpoint",
		Long: `Run an HTTP endpoint that verifies webhook signatures and prints each
event. With --nats-url every verified event is also published to NATS on
"<subject-prefix>.<event type>".`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			signingSecret, err := webhookSecret(secret)
			if err != nil {
				return err
			}

			logger := NewStderrLogger(cmd.ErrOrStderr())
			sinks := fanOut{&eventPrinter{w: cmd.OutOrStdout()}}

			if natsURL == "" {
				natsURL = viper.GetString("nats_url")
			}

			if subjectPrefix == "" {
				subjectPrefix = viper.GetString("event_subject_prefix")
			}

			if natsURL != "" {
				opts := []natsbus.Option{}
				if viper.GetBool("verbose") {
					opts = append(opts, natsbus.WithLogger(logger))
				}

				publisher, conn, err := natsbus.Connect(natsbus.Config{
					URL:           natsURL,
					Name:          "stripe-client webhooks",
					SubjectPrefix: subjectPrefix,
					Timeout:       natsTimeout,
				}, opts...)
				if err != nil {
					return err
				}

				defer func() { _ = conn.Drain() }()

				sinks = append(sinks, publisher)
			}

			handler := webhook.NewHandler(signingSecret, sinks,
				webhook.WithTolerance(tolerance),
				webhook.WithErrorHandler(func(err error) {
					logger.Warn("Rejected webhook", map[string]interface{}{"error": err.Error()})
				}),
			)

			server := &http.Server{
				Addr:              addr,
				Handler:           NewWebhookRouter(path, handler),
				ReadHeaderTimeout: readHeaderTimeout,
			}

			ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)

			go func() {
				errCh <- server.ListenAndServe()
			}()

			logger.Info("Listening for webhooks", map[string]interface{}{"addr": addr, "path": path})

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}

				return fmt.Errorf("webhook listener failed: %w", err)
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			err = server.Shutdown(shutdownCtx)
			if err != nil {
				return fmt.Errorf("failed to shut down webhook listener: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:4242", "address to listen on")
	cmd.Flags().StringVar(&path, "path", "/webhook", "path receiving webhook requests")
	cmd.Flags().StringVar(&secret, "secret", "", "endpoint signing secret (whsec_...)")
	cmd.Flags().StringVar(&natsURL, "nats-url", "", "publish verified events to this NATS server")
	cmd.Flags().StringVar(&subjectPrefix, "subject-prefix", "", "NATS subject prefix (default \"stripe.events\")")
	cmd.Flags().DurationVar(&tolerance, "tolerance", webhook.DefaultTolerance, "maximum age of a signed timestamp")

	return cmd
}

func newWebhooksVerifyCommand() *cobra.Command {
	var (
		secret    string
		signature string
		payload   string
		tolerance time.Duration
		now       int64
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a signed webhook payload",
		Long:  "Check a Stripe-Signature header against a payload file and print the decoded event",
		RunE: func(cmd *cobra.Command, _ []string) error {
			signingSecret, err := webhookSecret(secret)
			if err != nil {
				return err
			}

			if signature == "" {
				return constants.ErrSignatureRequired
			}

			data, err := readPayloadFile(payload)
			if err != nil {
				return err
			}

			if now == 0 {
				now = time.Now().Unix()
			}

			event, err := webhook.ConstructEventWithTolerance(data, signature, signingSecret, now, tolerance)
			if err != nil {
				return fmt.Errorf("verification failed: %w", err)
			}

			return render(cmd.OutOrStdout(), event, eventHeader, [][]string{eventRow(*event)})
		},
	}

	cmd.Flags().StringVar(&secret, "secret", "", "endpoint signing secret (whsec_...)")
	cmd.Flags().StringVar(&signature, "signature", "", "value of the Stripe-Signature header")
	cmd.Flags().StringVar(&payload, "payload", "", "file holding the raw request body")
	cmd.Flags().DurationVar(&tolerance, "tolerance", webhook.DefaultTolerance, "maximum age of the signed timestamp")
	cmd.Flags().Int64Var(&now, "now", 0, "verify as of this unix time (default: current time)")
	_ = cmd.MarkFlagRequired("payload")

	return cmd
}

func newWebhooksSignCommand() *cobra.Command {
	var (
		secret    string
		payload   string
		timestamp int64
	)

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a payload for testing",
		Long:  "Print the Stripe-Signature header for a payload file, for replaying events against an endpoint",
		RunE: func(cmd *cobra.Command, _ []string) error {
			signingSecret, err := webhookSecret(secret)
			if err != nil {
				return err
			}

			data, err := readPayloadFile(payload)
			if err != nil {
				return err
			}

			if timestamp == 0 {
				timestamp = time.Now().Unix()
			}

			header := webhook.FormatHeader(data, signingSecret, timestamp)

			return render(cmd.OutOrStdout(),
				map[string]string{"header": header, "timestamp": strconv.FormatInt(timestamp, 10)},
				[]string{"Header", "Timestamp"},
				[][]string{{header, strconv.FormatInt(timestamp, 10)}})
		},
	}

	cmd.Flags().StringVar(&secret, "secret", "", "endpoint signing secret (whsec_...)")
	cmd.Flags().StringVar(&payload, "payload", "", "file holding the raw request body")
	cmd.Flags().Int64Var(&timestamp, "timestamp", 0, "unix time to sign with (default: current time)")
	_ = cmd.MarkFlagRequired("payload")

	return cmd
}
