package app

import (
	"os"

	"github.com/Diome1804/Gestion-Salaire-sub000/internal/attendance"
	"github.com/Diome1804/Gestion-Salaire-sub000/internal/auth"
	"github.com/Diome1804/Gestion-Salaire-sub000/internal/company"
	"github.com/Diome1804/Gestion-Salaire-sub000/internal/employee"
	"github.com/Diome1804/Gestion-Salaire-sub000/internal/messaging/kafka"
	"github.com/Diome1804/Gestion-Salaire-sub000/internal/payment"
	"github.com/Diome1804/Gestion-Salaire-sub000/internal/payrun"
	"github.com/Diome1804/Gestion-Salaire-sub000/internal/payslip"
	"github.com/Diome1804/Gestion-Salaire-sub000/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects the infrastructure, migrates the schema and mounts
// every module on the router.
func BuildApp(router *gin.Engine) error {
	logger := zap.L().Named("app")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	logger.Info("database connection established")

	if err := gormDB.AutoMigrate(
		&company.Company{},
		&auth.User{},
		&employee.Employee{},
		&attendance.Attendance{},
		&payrun.PayRun{},
		&payslip.Payslip{},
		&payslip.Deduction{},
		&payment.Payment{},
		&kafka.OutboxRecord{},
	); err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	logger.Info("redis connection established")

	return registerModules(router, sqlDB, gormDB, redisClient)
}
