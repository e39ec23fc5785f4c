// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/joho/godotenv"

	opsv1 "github.com/localbzz/clientops/api/proto/ops/v1/generated"
	ent "github.com/localbzz/clientops/ent/generated"
	"github.com/localbzz/clientops/ent/generated/migrate"
	"github.com/localbzz/clientops/internal/config"
	"github.com/localbzz/clientops/internal/database"
	"github.com/localbzz/clientops/internal/middleware"
	"github.com/localbzz/clientops/internal/repository"
	"github.com/localbzz/clientops/internal/service"
	"github.com/localbzz/clientops/pkg/auth"
	"github.com/localbzz/clientops/pkg/email"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := cfg.ValidateConfig(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	log.Println("Connecting to PostgreSQL with Ent...")
	handles, err := database.Open(database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
		Debug:    cfg.IsDevelopment(),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := handles.Close(); err != nil {
			log.Printf("Failed to close database connection: %v", err)
		}
	}()

	if cfg.Server.AutoMigrate {
		if err := runAutoMigration(context.Background(), handles.Ent); err != nil {
			log.Fatalf("Failed to run auto migration: %v", err)
		}
	}

	tokenManager := auth.NewTokenManager(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessTokenDuration,
		cfg.JWT.RefreshTokenDuration,
	)

	var emailService email.EmailService
	if cfg.Email.TestingMode || cfg.IsDevelopment() {
		log.Println("Using mock email service for development/testing")
		emailService = email.NewMockEmailService()
	} else {
		log.Println("Using SMTP email service")
		emailService = email.NewSMTPEmailService(cfg.ToEmailConfig())

		if smtpService, ok := emailService.(*email.SMTPEmailService); ok {
			if err := smtpService.TestConnection(context.Background()); err != nil {
				log.Printf("Warning: SMTP connection test failed: %v", err)
			} else {
				log.Println("SMTP connection test successful")
			}
		}
	}

	// Initialize services
	activityService := service.NewActivityService(handles.Ent)
	activityLogger := service.NewActivityLogger(activityService)

	clientService := service.NewClientService(repository.NewEntClientRepository(handles.Ent), activityLogger)
	templateService := service.NewTemplateService(repository.NewEntTemplateRepository(handles.Ent))
	assignmentService := service.NewAssignmentService(
		repository.NewEntAssignmentRepository(handles.Ent),
		repository.NewEntTemplateRepository(handles.Ent),
	)
	cycleService := service.NewCycleService(repository.NewEntCycleRepository(handles.Ent), activityLogger)
	shootService := service.NewShootService(repository.NewEntShootRepository(handles.Ent), activityLogger)
	taskService := service.NewTaskService(repository.NewEntTaskRepository(handles.Ent), activityLogger)
	contextService := service.NewContextService(repository.NewEntContextRepository(handles.Ent))
	teamService := service.NewTeamService(
		repository.NewEntProfileRepository(handles.Ent),
		tokenManager,
		auth.NewPasswordManager(),
		emailService,
		activityLogger,
	)
	dashboardService := service.NewDashboardService(repository.NewReportRepository(handles.DB))

	// Initialize middleware
	metadataExtractor := middleware.NewMetadataExtractorInterceptor()
	authInterceptor := middleware.NewAuthInterceptor(tokenManager)
	validationInterceptor := middleware.NewValidationInterceptor(middleware.DefaultValidationConfig())

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			metadataExtractor.Unary(),
			validationInterceptor.Unary(),
			authInterceptor.Unary(),
			loggingInterceptor,
		),
		grpc.ChainStreamInterceptor(
			metadataExtractor.Stream(),
			validationInterceptor.Stream(),
			authInterceptor.Stream(),
		),
	)

	// Register services
	opsv1.RegisterClientServiceServer(grpcServer, clientService)
	opsv1.RegisterTemplateServiceServer(grpcServer, templateService)
	opsv1.RegisterAssignmentServiceServer(grpcServer, assignmentService)
	opsv1.RegisterCycleServiceServer(grpcServer, cycleService)
	opsv1.RegisterShootServiceServer(grpcServer, shootService)
	opsv1.RegisterTaskServiceServer(grpcServer, taskService)
	opsv1.RegisterContextServiceServer(grpcServer, contextService)
	opsv1.RegisterTeamServiceServer(grpcServer, teamService)
	opsv1.RegisterDashboardServiceServer(grpcServer, dashboardService)

	// Register health check
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	for _, name := range []string{
		"ops.v1.ClientService",
		"ops.v1.TemplateService",
		"ops.v1.AssignmentService",
		"ops.v1.CycleService",
		"ops.v1.ShootService",
		"ops.v1.TaskService",
		"ops.v1.ContextService",
		"ops.v1.TeamService",
		"ops.v1.DashboardService",
		"",
	} {
		healthServer.SetServingStatus(name, grpc_health_v1.HealthCheckResponse_SERVING)
	}

	if cfg.Server.EnableReflection {
		reflection.Register(grpcServer)
		log.Println("gRPC reflection enabled (disable in production)")
	}

	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Server.GRPCPort))
	if err != nil {
		log.Fatalf("Failed to listen: %v", err)
	}

	go func() {
		log.Printf("🚀 ClientOps gRPC server listening on port %s", cfg.Server.GRPCPort)
		if err := grpcServer.Serve(listener); err != nil {
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("📴 Shutting down server...")
	grpcServer.GracefulStop()
	log.Println("✅ Server shutdown complete")
}

// runAutoMigration runs the auto migration
func runAutoMigration(ctx context.Context, client *ent.Client) error {
	log.Println("🔄 Running auto migration...")
	err := client.Schema.Create(
		ctx,
		migrate.WithDropIndex(true),
		migrate.WithDropColumn(true),
		migrate.WithForeignKeys(true),
	)
	if err != nil {
		return fmt.Errorf("run auto migration: %w", err)
	}
	log.Println("✅ Auto migration completed")
	return nil
}

// loggingInterceptor logs incoming requests
func loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	caller := middleware.GetCallerInfoFromContext(ctx)
	resp, err := handler(ctx, req)
	duration := time.Since(start)
	logLevel := "INFO"
	if err != nil {
		logLevel = "ERROR"
	}
	log.Printf("[%s] %s completed in %v (user: %s, ip: %s)",
		logLevel, info.FullMethod, duration, caller.UserID, caller.IPAddress)
	if err != nil {
		log.Printf("[ERROR] %s error: %v", info.FullMethod, err)
	}
	return resp, err
}
