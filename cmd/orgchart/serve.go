package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/gartstein/orgchart/internal/org/auth"
	"github.com/gartstein/orgchart/internal/org/config"
	"github.com/gartstein/orgchart/internal/org/controller"
	"github.com/gartstein/orgchart/internal/org/events"
	"github.com/gartstein/orgchart/internal/org/handlers"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the gRPC and HTTP servers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), opts)
		},
	}
}

func runServe(ctx context.Context, opts *rootOptions) error {
	logger := initLogger()
	defer syncLogger(logger)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(opts.configPath, opts.envFiles...)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	repo, err := openRepository(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer repo.Close()

	if cfg.SeedRoles {
		if err := repo.SeedRoles(ctx); err != nil {
			return fmt.Errorf("failed to seed roles: %w", err)
		}
	}

	recorder := events.NewRecorder(repo, logger)
	var producer controller.EventProducer = recorder
	if cfg.KafkaEnabled() {
		kafkaProducer, err := events.NewProducer(cfg.KafkaBrokers, logger, cfg.Topic)
		if err != nil {
			return fmt.Errorf("failed to initialize Kafka producer: %w", err)
		}
		defer kafkaProducer.Close()
		producer = kafkaProducer

		consumer := events.NewConsumer(cfg.KafkaBrokers, cfg.KafkaGroupID, cfg.Topic, logger)
		consumer.RegisterHandler(recorder.Handle)
		consumer.Start(ctx)
		defer consumer.Close()
	} else {
		logger.Info("Kafka disabled, recording activity in-process")
	}

	orgSvc := controller.NewOrgService(repo, producer, logger)
	orgHandler := handlers.NewOrgHandler(orgSvc, logger)

	authInterceptor := auth.NewAuthInterceptor(cfg.JWTSecret, handlers.ProtectedMethods())
	server := handlers.NewServer(cfg.GRPCPort, cfg.HTTPPort, logger, grpc.UnaryInterceptor(authInterceptor.Unary()))
	server.RegisterGRPCHandler(orgHandler)
	if err := server.RegisterHTTPGateway(
		ctx,
		[]grpc.DialOption{
			grpc.WithTransportCredentials(insecure.NewCredentials()),
		},
		cfg.JWTSecret); err != nil {
		return fmt.Errorf("failed to register HTTP gateway: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start servers: %w", err)
		}
	case <-ctx.Done():
		server.Stop()
		<-errCh
	}

	logger.Info("Servers stopped properly")
	return nil
}
