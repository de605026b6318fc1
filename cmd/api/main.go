package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/pontoflow/ponto-backend-go/internal/config"
	appHTTP "github.com/pontoflow/ponto-backend-go/internal/handler/http"
	"github.com/pontoflow/ponto-backend-go/internal/pkg/cron"
	"github.com/pontoflow/ponto-backend-go/internal/pkg/database"
	"github.com/pontoflow/ponto-backend-go/internal/pkg/jwt"
	"github.com/pontoflow/ponto-backend-go/internal/repository/postgresql"
	authService "github.com/pontoflow/ponto-backend-go/internal/service/auth"
	policyService "github.com/pontoflow/ponto-backend-go/internal/service/policy"
	punchService "github.com/pontoflow/ponto-backend-go/internal/service/punch"
	summaryService "github.com/pontoflow/ponto-backend-go/internal/service/summary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	dsn := cfg.DatabaseURL()
	if err := database.RunMigrations(dsn, cfg.App.MigrationsPath); err != nil {
		log.Fatal("Error running migrations: ", err)
	}

	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	policyRepo := postgresql.NewPolicyRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)
	summaryRepo := postgresql.NewSummaryRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	summarySvc := summaryService.NewSummaryService(summaryRepo, punchRepo, policyRepo, employeeRepo)
	punchSvc := punchService.NewPunchService(punchRepo, policyRepo, summarySvc)
	policySvc := policyService.NewPolicyService(policyRepo, employeeRepo)
	authSvc := authService.NewAuthService(employeeRepo, jwtService)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc)
	punchHandler := appHTTP.NewPunchHandler(punchSvc)
	summaryHandler := appHTTP.NewSummaryHandler(summarySvc)
	policyHandler := appHTTP.NewPolicyHandler(policySvc)

	scheduler := cron.NewScheduler()
	cron.NewSummaryJobs(employeeRepo, summarySvc).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		punchHandler,
		summaryHandler,
		policyHandler,
		cfg.App.AllowedOrigins,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
