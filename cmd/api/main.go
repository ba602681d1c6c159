package main

import (
	"fmt"
	"net/http"

	"github.com/zenstaff/attendance-backend-go/internal/config"
	appHTTP "github.com/zenstaff/attendance-backend-go/internal/handler/http"
	"github.com/zenstaff/attendance-backend-go/internal/pkg/database"
	"github.com/zenstaff/attendance-backend-go/internal/pkg/jwt"
	"github.com/zenstaff/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/zenstaff/attendance-backend-go/internal/service/attendance"
	authService "github.com/zenstaff/attendance-backend-go/internal/service/auth"
	dashboardService "github.com/zenstaff/attendance-backend-go/internal/service/dashboard"
	employeeService "github.com/zenstaff/attendance-backend-go/internal/service/employee"
	exportService "github.com/zenstaff/attendance-backend-go/internal/service/export"
	holidayService "github.com/zenstaff/attendance-backend-go/internal/service/holiday"
	reportService "github.com/zenstaff/attendance-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, JWTService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, employeeRepo, holidayRepo)
	holidaySvc := holidayService.NewHolidayService(holidayRepo)
	reportSvc := reportService.NewReportService(employeeRepo, attendanceRepo, holidayRepo, reportService.NewCalculator())
	dashboardSvc := dashboardService.NewDashboardService(attendanceRepo, employeeRepo, holidayRepo)
	exportSvc := exportService.NewExportService(attendanceSvc)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)
	exportHandler := appHTTP.NewExportHandler(exportSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			Env:            cfg.App.Env,
			AllowedOrigins: cfg.App.AllowedOrigins,
		},
		JWTService,
		authHandler,
		employeeHandler,
		attendanceHandler,
		holidayHandler,
		reportHandler,
		dashboardHandler,
		exportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
