package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/mwielgosz/SpendTracker/internal/auth"
	"github.com/mwielgosz/SpendTracker/internal/charts"
	database "github.com/mwielgosz/SpendTracker/internal/db"
	"github.com/mwielgosz/SpendTracker/internal/finance/application"
	"github.com/mwielgosz/SpendTracker/internal/finance/infrastructure"
	"github.com/mwielgosz/SpendTracker/internal/finance/interfaces"
	"github.com/mwielgosz/SpendTracker/internal/user"
)

type Response struct {
	Message string `json:"message"`
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("Started %s %s", r.Method, r.URL.Path)

		next.ServeHTTP(w, r)

		log.Printf("Completed %s in %v", r.URL.Path, time.Since(start))
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string, errs ...[]string) {
	payload := map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	}
	if len(errs) > 0 && len(errs[0]) > 0 {
		payload["errors"] = errs[0]
	}
	respondJSON(w, status, payload)
}

type Server struct {
	router           *http.ServeMux
	dbService        *database.DBService
	authHandler      *auth.Handler
	authService      auth.Service
	userHandler      *user.Handler
	budgetHandler    *interfaces.BudgetHandler
	dashboardHandler *interfaces.DashboardHandler
	expenseHandler   *interfaces.ExpenseHandler
	incomeHandler    *interfaces.IncomeHandler
	historyHandler   *interfaces.HistoryHandler
	exportHandler    *interfaces.ExportHandler
}

func NewServer(
	dbService *database.DBService,
	authHandler *auth.Handler,
	authService auth.Service,
	userHandler *user.Handler,
	budgetHandler *interfaces.BudgetHandler,
	dashboardHandler *interfaces.DashboardHandler,
	expenseHandler *interfaces.ExpenseHandler,
	incomeHandler *interfaces.IncomeHandler,
	historyHandler *interfaces.HistoryHandler,
	exportHandler *interfaces.ExportHandler,
) *Server {
	return &Server{
		router:           http.NewServeMux(),
		dbService:        dbService,
		authHandler:      authHandler,
		authService:      authService,
		userHandler:      userHandler,
		budgetHandler:    budgetHandler,
		dashboardHandler: dashboardHandler,
		expenseHandler:   expenseHandler,
		incomeHandler:    incomeHandler,
		historyHandler:   historyHandler,
		exportHandler:    exportHandler,
	}
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(Response{Message: "Path not found"})
}

func checkConfiguration() error {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, continuing with system environment variables")
	}

	if os.Getenv("JWT_SECRET") == "" {
		return errors.New("no JWT_SECRET provided")
	}
	return nil
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ready",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	stats := s.dbService.Health()
	status := http.StatusOK
	if stats["status"] != "up" {
		status = http.StatusServiceUnavailable
	}
	respondJSON(w, status, stats)
}

func (s *Server) RegisterRoutes() {
	router := http.NewServeMux()
	protect := s.authService.JWTAccessTokenMiddleware()

	// Public routes
	router.Handle("POST /auth/register", http.HandlerFunc(s.userHandler.HandleRegister))
	router.Handle("POST /auth/login", http.HandlerFunc(s.authHandler.HandleLogin))
	router.Handle("GET /auth/logout", http.HandlerFunc(s.authHandler.HandleLogout))
	router.Handle("GET /ready", http.HandlerFunc(s.handleReady))
	router.Handle("GET /health", http.HandlerFunc(s.handleHealth))

	// Refresh token route (validated by the refresh cookie, not the access token)
	router.Handle("PUT /auth/refresh", s.authService.JWTRefreshTokenMiddleware()(http.HandlerFunc(s.authHandler.RefreshAccessToken)))

	// Account routes
	router.Handle("GET /profile", protect(http.HandlerFunc(s.userHandler.HandleGetUserProfile)))
	router.Handle("POST /change-password", protect(http.HandlerFunc(s.userHandler.HandleChangePassword)))

	// Budget routes
	router.Handle("GET /budget", protect(http.HandlerFunc(s.budgetHandler.GetBudget)))
	router.Handle("POST /budget", protect(http.HandlerFunc(s.budgetHandler.UpdateBudget)))

	// Dashboard
	router.Handle("GET /dashboard/", protect(http.HandlerFunc(s.dashboardHandler.GetDashboard)))

	// Transactions
	router.Handle("POST /add-expense", protect(http.HandlerFunc(s.expenseHandler.AddExpense)))
	router.Handle("POST /add-income", protect(http.HandlerFunc(s.incomeHandler.AddIncome)))
	router.Handle("GET /history", protect(http.HandlerFunc(s.historyHandler.GetHistory)))
	router.Handle("POST /edit-expense/{id}", protect(http.HandlerFunc(s.expenseHandler.EditExpense)))
	router.Handle("POST /edit-income/{id}", protect(http.HandlerFunc(s.incomeHandler.EditIncome)))
	router.Handle("POST /delete-expense/{id}", protect(http.HandlerFunc(s.expenseHandler.DeleteExpense)))
	router.Handle("POST /delete-income/{id}", protect(http.HandlerFunc(s.incomeHandler.DeleteIncome)))

	// Exports
	router.Handle("GET /export-csv", protect(http.HandlerFunc(s.exportHandler.ExportCSV)))
	router.Handle("GET /export-excel", protect(http.HandlerFunc(s.exportHandler.ExportExcel)))
	router.Handle("GET /export-pdf", protect(http.HandlerFunc(s.exportHandler.ExportPDF)))

	router.Handle("/", http.HandlerFunc(notFoundHandler))

	s.router = router
}

func main() {
	if err := checkConfiguration(); err != nil {
		log.Fatalf("Missing configuration, update to start server")
	}

	dbService, err := database.NewDBService()
	if err != nil {
		log.Fatalf("Could not initialize database: %v", err)
	}
	defer dbService.Close()

	if err := database.RunMigrations(dbService.DB); err != nil {
		log.Fatalf("Could not run migrations: %v", err)
	}

	userRepo := user.NewUserRepository(dbService.DB)
	userService := user.NewUserService(userRepo)
	userHandler := user.NewHandler(userService)

	sessionStore := auth.NewSessionStore()
	sessionStore.StartCleanup(time.Hour)
	jwtManager := auth.NewJWTManager()
	authService := auth.NewAuthService(userService, jwtManager, sessionStore)
	authHandler := auth.NewHandler(authService)

	expenseRepo := infrastructure.NewExpenseRepository(dbService.DB)
	incomeRepo := infrastructure.NewIncomeRepository(dbService.DB)
	budgetRepo := infrastructure.NewBudgetRepository(dbService.DB)

	expenseService := application.NewExpenseService(expenseRepo)
	incomeService := application.NewIncomeService(incomeRepo)
	budgetService := application.NewBudgetService(budgetRepo)
	reportService := application.NewReportService(expenseRepo, incomeRepo, budgetRepo)
	exportService := application.NewExportService(expenseRepo, incomeRepo)
	chartGenerator := charts.NewGenerator()

	budgetHandler := interfaces.NewBudgetHandler(budgetService, respondJSON, respondError)
	dashboardHandler := interfaces.NewDashboardHandler(reportService, chartGenerator, respondJSON, respondError)
	expenseHandler := interfaces.NewExpenseHandler(expenseService, respondJSON, respondError)
	incomeHandler := interfaces.NewIncomeHandler(incomeService, respondJSON, respondError)
	historyHandler := interfaces.NewHistoryHandler(expenseService, incomeService, respondJSON, respondError)
	exportHandler := interfaces.NewExportHandler(exportService, respondError)

	server := NewServer(dbService, authHandler, authService, userHandler, budgetHandler, dashboardHandler, expenseHandler, incomeHandler, historyHandler, exportHandler)
	server.RegisterRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s...", port)
	if err := http.ListenAndServe(":"+port, loggingMiddleware(server.router)); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
