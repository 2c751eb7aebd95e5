package cli

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/Sudhanshu-Shirgaonkar/portfolio/internal/analytics"
	"github.com/Sudhanshu-Shirgaonkar/portfolio/internal/config"
	"github.com/Sudhanshu-Shirgaonkar/portfolio/internal/content"
	"github.com/Sudhanshu-Shirgaonkar/portfolio/internal/mail"
	"github.com/Sudhanshu-Shirgaonkar/portfolio/internal/web"
)

const (
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 10 * time.Second
	cleanupInterval   = 24 * time.Hour
)

type serveOptions struct {
	cfg   config.Config
	watch bool
	// ready receives the bound address once the listener is open.
	ready func(addr string)
}

func newServeCmd(cfg *config.Config) *cobra.Command {
	var (
		port        int
		contentPath string
		watch       bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio over HTTP",
		Example: `  portfolio serve
  portfolio serve --port 3000 --content ./portfolio.yaml --watch`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := serveOptions{cfg: *cfg, watch: watch}
			if cmd.Flags().Changed("port") {
				opts.cfg.Port = port
			}
			if contentPath != "" {
				opts.cfg.ContentFile = contentPath
			}
			return runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 8080, "port to listen on (overrides PORT)")
	cmd.Flags().StringVar(&contentPath, "content", "", "portfolio YAML file (overrides CONTENT_FILE)")
	cmd.Flags().BoolVar(&watch, "watch", false, "reload the content file when it changes")
	return cmd
}

func runServe(ctx context.Context, opts serveOptions) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := opts.cfg
	if opts.watch && cfg.ContentFile == "" {
		return errWatchEmbedded
	}

	p, err := loadContent(cfg.ContentFile)
	if err != nil {
		return err
	}
	live := content.NewLive(p)
	if opts.watch {
		go func() {
			if err := live.Watch(ctx, cfg.ContentFile, config.Component(logger, "content")); err != nil {
				logger.Error().Err(err).Msg("content watcher stopped")
			}
		}()
	}

	if !cfg.SMTP.Configured() {
		logger.Warn().Msg("SMTP_USER/SMTP_PASS not set, contact form will report failures")
	}
	deps := web.Deps{
		Content: live,
		Mailer:  mail.NewSMTPSender(cfg.SMTP, config.Component(logger, "mail")),
		Log:     config.Component(logger, "http"),
		Admin:   cfg.Admin,
	}

	if cfg.AnalyticsDB != "" {
		store, err := analytics.Open(ctx, cfg.AnalyticsDB)
		if err != nil {
			return err
		}
		defer store.Close()
		deps.Analytics = store
		go runRetention(ctx, store)
	}

	gin.SetMode(cfg.GinMode)
	router, err := web.NewRouter(deps)
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", ":"+strconv.Itoa(cfg.Port))
	if err != nil {
		return err
	}
	srv := &http.Server{Handler: router, ReadHeaderTimeout: readHeaderTimeout}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	logger.Info().Str("addr", ln.Addr().String()).Msg("server listening")
	if opts.ready != nil {
		opts.ready(ln.Addr().String())
	}

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// runRetention deletes visits older than analytics.Retention once at start and then daily.
func runRetention(ctx context.Context, store *analytics.Store) {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()
	for {
		n, err := store.Cleanup(ctx, analytics.Retention)
		if err != nil && ctx.Err() == nil {
			logger.Error().Err(err).Msg("visit cleanup failed")
		} else if n > 0 {
			logger.Info().Int64("deleted", n).Msg("expired visits removed")
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
