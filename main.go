package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/kube-rca/incident-predictor/internal/client"
	"github.com/kube-rca/incident-predictor/internal/config"
	"github.com/kube-rca/incident-predictor/internal/handler"
	"github.com/kube-rca/incident-predictor/internal/ingest"
	"github.com/kube-rca/incident-predictor/internal/metrics"
	"github.com/kube-rca/incident-predictor/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// 하위 명령이 없으면 serve 로 동작
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "incident-predictor",
		Short:        "Incident history analysis API server",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	root.AddCommand(newServeCmd(), newAnalyzeCmd(), newProbeCmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func newAnalyzeCmd() *cobra.Command {
	var (
		file     string
		question string
		quoted   bool
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Ingest a CSV file and ask the model one question",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if !cmd.Flags().Changed("quoted") {
				quoted = cfg.Ingest.QuotedFields
			}
			return runAnalyze(cmd.Context(), cfg, file, question, quoted, cmd.OutOrStdout())
		},
	}

	addAnalyzeFlags(cmd.Flags(), &file, &question, &quoted)
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("question")

	return cmd
}

func addAnalyzeFlags(fs *pflag.FlagSet, file, question *string, quoted *bool) {
	fs.StringVarP(file, "file", "f", "", "incident CSV file (first line is a header)")
	fs.StringVarP(question, "question", "q", "", "question to ask about the incidents")
	fs.BoolVar(quoted, "quoted", false, "parse quoted CSV fields (embedded commas)")
}

func newProbeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "Check model endpoint connectivity once (exit 1 when offline)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			provider, err := newProvider(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			if !provider.CheckConnection(cmd.Context()) {
				fmt.Fprintf(cmd.OutOrStdout(), "offline %s %s\n", provider.Name(), provider.Endpoint())
				return fmt.Errorf("%s endpoint %s is offline", provider.Name(), provider.Endpoint())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "online %s %s\n", provider.Name(), provider.Endpoint())
			return nil
		},
	}
}

func runServe(parent context.Context) error {
	cfg := config.Load()

	logger, err := newLogger(cfg.Log.Level)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	// GIN_MODE 가 없으면 debug 레벨에서만 gin debug 출력
	if os.Getenv(gin.EnvGinMode) == "" && cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider, err := newProvider(ctx, cfg)
	if err != nil {
		logger.Error("failed to create model client", zap.String("provider", cfg.LLM.Provider), zap.Error(err))
		return err
	}

	m := metrics.New(prometheus.DefaultRegisterer)
	ws := service.NewWorkspace()
	parser := ingest.NewParser(ingest.WithQuotedFields(cfg.Ingest.QuotedFields))

	incidentService := service.NewIncidentService(parser, ws, m, logger)
	chatService := service.NewChatService(ws, provider, provider.Name(), m, logger)
	probeService := service.NewProbeService(provider, provider.Name(), cfg.Probe.Interval, m, logger)

	router := handler.NewRouter(handler.RouterDeps{
		AllowedOrigins: cfg.Server.CORSAllowedOrigins,
		Logger:         logger,
		Gatherer:       prometheus.DefaultGatherer,
		Incidents:      handler.NewIncidentHandler(incidentService),
		Chat:           handler.NewChatHandler(chatService),
		Status:         handler.NewStatusHandler(probeService, provider),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server started",
			zap.String("addr", srv.Addr),
			zap.String("provider", provider.Name()),
			zap.String("model", provider.Model()),
			zap.String("endpoint", provider.Endpoint()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		return probeService.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("shutting down server")
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped with error", zap.Error(err))
		return err
	}
	return nil
}

func runAnalyze(ctx context.Context, cfg config.Config, file, question string, quoted bool, out io.Writer) error {
	question = strings.TrimSpace(question)
	if question == "" {
		return fmt.Errorf("question is required")
	}

	raw, err := os.ReadFile(file)
	if err != nil {
		return err
	}

	incidents := ingest.NewParser(ingest.WithQuotedFields(quoted)).Parse(string(raw))
	if len(incidents) == 0 {
		return fmt.Errorf("no incidents in %s", file)
	}

	provider, err := newProvider(ctx, cfg)
	if err != nil {
		return err
	}

	answer, err := provider.Analyze(ctx, incidents, question)
	if err != nil {
		fmt.Fprintln(out, service.HaltedMessage(err))
		return err
	}

	fmt.Fprintln(out, answer)
	return nil
}

// LLM_PROVIDER 에 따라 모델 클라이언트 선택
func newProvider(ctx context.Context, cfg config.Config) (client.Provider, error) {
	switch cfg.LLM.Provider {
	case config.ProviderOllama, "":
		return client.NewOllamaClient(cfg.Ollama, cfg.Probe.Timeout), nil
	case config.ProviderGemini:
		gemini, err := client.NewGeminiClient(ctx, cfg.Gemini, cfg.Probe.Timeout)
		if err != nil {
			return nil, err
		}
		return gemini, nil
	default:
		return nil, fmt.Errorf("unsupported LLM_PROVIDER %q", cfg.LLM.Provider)
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", level, err)
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return zcfg.Build()
}
