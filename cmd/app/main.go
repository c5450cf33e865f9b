package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"laundry/cmd"
	httpadapter "laundry/internal/adapters/in/http"
	"laundry/internal/adapters/out/postgres/orderrepo"
	"laundry/internal/adapters/out/postgres/staffrepo"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	pricing := mustBuildPricing(configs)
	company := queries.CompanyInfo{
		Name:    configs.CompanyName,
		Address: configs.CompanyAddress,
		Phone:   configs.CompanyPhone,
		Email:   configs.CompanyEmail,
	}

	app := cmd.NewCompositionRoot(gormDB, pricing, company)

	startJobs(&app)
	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:       goDotEnvVariable("HTTP_PORT"),
		DBHost:         goDotEnvVariable("DB_HOST"),
		DBPort:         goDotEnvVariable("DB_PORT"),
		DBUser:         goDotEnvVariable("DB_USER"),
		DBPassword:     goDotEnvVariable("DB_PASSWORD"),
		DBName:         goDotEnvVariable("DB_NAME"),
		DBSslMode:      goDotEnvVariable("DB_SSLMODE"),
		TaxRate:        goDotEnvVariable("TAX_RATE"),
		DiscountMinor:  goDotEnvVariable("DISCOUNT_MINOR"),
		CompanyName:    goDotEnvVariable("COMPANY_NAME"),
		CompanyAddress: goDotEnvVariable("COMPANY_ADDRESS"),
		CompanyPhone:   goDotEnvVariable("COMPANY_PHONE"),
		CompanyEmail:   goDotEnvVariable("COMPANY_EMAIL"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}, &orderrepo.StatusEventDTO{},
		&staffrepo.StaffMemberDTO{}, &staffrepo.AssignmentDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func mustBuildPricing(configs cmd.Config) services.PricingPolicy {
	taxRate, err := decimal.NewFromString(configs.TaxRate)
	if err != nil {
		log.Fatalf("Invalid TAX_RATE: %v", err)
	}

	discountMinor, err := strconv.ParseInt(configs.DiscountMinor, 10, 64)
	if err != nil {
		log.Fatalf("Invalid DISCOUNT_MINOR: %v", err)
	}
	discount, err := kernel.MoneyFromMinorUnits(discountMinor)
	if err != nil {
		log.Fatalf("Invalid DISCOUNT_MINOR: %v", err)
	}

	pricing := services.PricingPolicy{TaxRate: taxRate, Discount: discount}
	if err := pricing.Validate(); err != nil {
		log.Fatalf("Invalid pricing policy: %v", err)
	}
	return pricing
}

func startJobs(app *cmd.CompositionRoot) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	jobManager := app.CreateJobManager(logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateCreateStaffCommandHandler(),
		app.CreateAdvanceOrderStatusCommandHandler(),
		app.CreateAssignStaffCommandHandler(),
		app.CreateDetachStaffCommandHandler(),
		app.CreateReviewItemQualityCommandHandler(),
		app.CreateGetUncompletedOrdersQueryHandler(),
		app.CreateGetAllStaffQueryHandler(),
		app.CreateGetInvoiceQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
