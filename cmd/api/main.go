package main

import (
	"fmt"
	"net/http"

	"github.com/shiftwise/attendance-backend-go/internal/config"
	appHTTP "github.com/shiftwise/attendance-backend-go/internal/handler/http"
	"github.com/shiftwise/attendance-backend-go/internal/pkg/database"
	"github.com/shiftwise/attendance-backend-go/internal/pkg/jwt"
	"github.com/shiftwise/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/shiftwise/attendance-backend-go/internal/service/attendance"
	authService "github.com/shiftwise/attendance-backend-go/internal/service/auth"
	leaveService "github.com/shiftwise/attendance-backend-go/internal/service/leave"
	reportService "github.com/shiftwise/attendance-backend-go/internal/service/report"
	shiftService "github.com/shiftwise/attendance-backend-go/internal/service/shift"
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
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	leaveRepo := postgresql.NewLeaveRequestRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	location := cfg.Location()

	authSvc := authService.NewAuthService(db, userRepo, jwtService)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, shiftRepo, leaveRepo, cfg.App.WorkdayStart, location)
	shiftSvc := shiftService.NewShiftService(db, shiftRepo)
	leaveSvc := leaveService.NewLeaveService(db, leaveRepo, location)
	reportSvc := reportService.NewReportService(db, attendanceRepo, shiftRepo, leaveRepo, userRepo, location)

	authHandler := appHTTP.NewAuthHandler(authSvc, jwtService)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	shiftHandler := appHTTP.NewShiftHandler(shiftSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		attendanceHandler,
		shiftHandler,
		leaveHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
