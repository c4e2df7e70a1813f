package app

import (
	"database/sql"

	"github.com/Diome1804/Gestion-Salaire-sub000/internal/attendance"
	"github.com/Diome1804/Gestion-Salaire-sub000/internal/auth"
	"github.com/Diome1804/Gestion-Salaire-sub000/internal/company"
	"github.com/Diome1804/Gestion-Salaire-sub000/internal/employee"
	"github.com/Diome1804/Gestion-Salaire-sub000/internal/messaging/kafka"
	"github.com/Diome1804/Gestion-Salaire-sub000/internal/payment"
	"github.com/Diome1804/Gestion-Salaire-sub000/internal/payrun"
	"github.com/Diome1804/Gestion-Salaire-sub000/internal/payslip"
	"github.com/Diome1804/Gestion-Salaire-sub000/internal/rates"
	"github.com/Diome1804/Gestion-Salaire-sub000/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	companyRepo := company.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	payrunRepo := payrun.NewRepository(gormDB, db)
	payslipRepo := payslip.NewRepository(gormDB, db)
	paymentRepo := payment.NewRepository(gormDB, db)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := rbac.NewEnforcer()
	if err != nil {
		return err
	}

	// --- Services ---
	authService := auth.NewService(authRepo)
	companyService := company.NewService(db, companyRepo)
	employeeService := employee.NewService(db, employeeRepo)
	attendanceService := attendance.NewService(db, attendanceRepo)
	ratesService := rates.NewService(employeeRepo, companyRepo, rdb)
	payslipService := payslip.NewService(db, payslipRepo)
	payrunService := payrun.NewService(
		db,
		payrunRepo,
		payslipRepo,
		employeeRepo,
		companyRepo,
		ratesService,
		attendanceService,
		outboxRepo,
	)
	paymentService := payment.NewService(db, paymentRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	companyHandler := company.NewHandler(companyService)
	employeeHandler := employee.NewHandler(employeeService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	ratesHandler := rates.NewHandler(ratesService)
	payslipHandler := payslip.NewHandler(payslipService)
	payrunHandler := payrun.NewHandlerWithRedis(payrunService, rdb)
	paymentHandler := payment.NewHandlerWithRedis(paymentService, rdb)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		company.RegisterRoutes(api, companyHandler, enforcer)
		employee.RegisterRoutes(api, employeeHandler, enforcer)
		attendance.RegisterRoutes(api, attendanceHandler, enforcer)
		rates.RegisterRoutes(api, ratesHandler, enforcer)
		payslip.RegisterRoutes(api, payslipHandler, enforcer)
		payrun.RegisterRoutes(api, payrunHandler, enforcer, rdb)
		payment.RegisterRoutes(api, paymentHandler, enforcer, rdb)
	}

	return nil
}
