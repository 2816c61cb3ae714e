package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/veritime/attend-backend-go/internal/config"
	appHTTP "github.com/veritime/attend-backend-go/internal/handler/http"
	"github.com/veritime/attend-backend-go/internal/pkg/cache"
	"github.com/veritime/attend-backend-go/internal/pkg/cron"
	"github.com/veritime/attend-backend-go/internal/pkg/database"
	"github.com/veritime/attend-backend-go/internal/pkg/metrics"
	"github.com/veritime/attend-backend-go/internal/repository/postgresql"
	attendanceService "github.com/veritime/attend-backend-go/internal/service/attendance"
	deviceService "github.com/veritime/attend-backend-go/internal/service/device"
	employeeService "github.com/veritime/attend-backend-go/internal/service/employee"
	"github.com/veritime/attend-backend-go/internal/service/master"
	punchService "github.com/veritime/attend-backend-go/internal/service/punch"
	reportService "github.com/veritime/attend-backend-go/internal/service/report"
	shiftService "github.com/veritime/attend-backend-go/internal/service/shift"
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

	lookupCache, err := cache.New(cfg.RedisAddr(), cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Fatal("Failed to connect to redis: ", err)
	}

	metrics.Register()

	punchRepo := postgresql.NewPunchRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	assignmentRepo := postgresql.NewAssignmentRepository(db)
	branchRepo := postgresql.NewBranchRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	deviceRepo := postgresql.NewDeviceRepository(db)

	lookupService := master.NewLookupService(lookupCache, employeeRepo, branchRepo, departmentRepo, deviceRepo, shiftRepo)
	shiftResolver := shiftService.NewResolver(employeeRepo, shiftRepo, assignmentRepo)
	assignmentSvc := shiftService.NewAssignmentService(employeeRepo, shiftRepo, assignmentRepo)
	reconciler := attendanceService.NewReconciler(employeeRepo, shiftResolver)
	reportSvc := reportService.NewReportService(punchRepo, employeeRepo, reportService.NewEarlyLeavePolicy())
	punchSvc := punchService.NewPunchService(punchRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, lookupService)
	healthSvc := deviceService.NewHealthService(deviceRepo, punchRepo, cfg.Monitor.OnlineThreshold)

	reportHandler := appHTTP.NewReportHandler(reportSvc, reconciler, punchRepo)
	punchHandler := appHTTP.NewPunchHandler(punchSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc, assignmentSvc, shiftResolver)
	lookupHandler := appHTTP.NewLookupHandler(lookupService)
	deviceHandler := appHTTP.NewDeviceHandler(healthSvc)

	scheduler := cron.NewScheduler()
	scheduler.AddJob("device-health-sweep", cfg.Monitor.SweepInterval, func(ctx context.Context) error {
		healthSvc.Sweep(ctx)
		return nil
	})
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			AppName:        cfg.App.Name,
			AppVersion:     cfg.App.Version,
			Env:            cfg.App.Env,
			AllowedOrigins: cfg.App.AllowedOrigins,
		},
		reportHandler,
		punchHandler,
		employeeHandler,
		lookupHandler,
		deviceHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
