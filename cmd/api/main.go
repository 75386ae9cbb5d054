package main

import (
	"context"
	"os"
	"strconv"
	"time"

	"boycottwatch/cmd/internal/domain/sqlite"
	"boycottwatch/cmd/internal/domain/sqlite/repository"
	"boycottwatch/cmd/internal/http/handler"
	adminmw "boycottwatch/cmd/internal/http/middleware"
	"boycottwatch/cmd/internal/infrastructure/aws/storage"
	"boycottwatch/cmd/internal/infrastructure/aws/websocket"
	"boycottwatch/cmd/internal/infrastructure/logodev"
	"boycottwatch/cmd/internal/service"
	"boycottwatch/cmd/internal/service/jobs"
	"boycottwatch/cmd/internal/utils/uid"
	"boycottwatch/cmd/internal/utils/validators"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

const envVarsPrefix = "/boycottwatch/prod/"

func main() {
	validate := validator.New()
	registerValidators(validate)

	// Loads env vars depending on environment
	if os.Getenv("GO_ENV") == "production" {
		loadProdEnv() // AWS SSM Parameter Store
	} else {
		// Loads from .env
		err := godotenv.Load()
		if err != nil {
			panic(err)
		}
	}

	uid.Init(machineID())

	// Init SQLite
	db, err := sqlite.Init()
	if err != nil {
		panic(err)
	}

	// Init S3 client
	s3Client, err := storage.NewStorageClient()
	if err != nil {
		panic(err)
	}

	// Init API Gateway management client for the moderation feed
	gateway, err := websocket.NewAWSGatewayClient(
		context.Background(),
		os.Getenv("WS_GATEWAY_ENDPOINT"),
		os.Getenv("WS_GATEWAY_REGION"),
	)
	if err != nil {
		panic(err)
	}
	logoClient := logodev.NewClient()

	// Getting repos
	brandRepo := repository.NewBrandRepository(db)
	beneficiaryRepo := repository.NewBeneficiaryRepository(db)
	relationRepo := repository.NewRelationRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	controversyRepo := repository.NewControversyRepository(db)
	propositionRepo := repository.NewPropositionRepository(db)
	connectionRepo := repository.NewConnectionRepository(db)
	logoRepo := repository.NewLogoRepository(db)

	// Getting services
	feedService := service.NewFeedService(connectionRepo, gateway)
	chainService := service.NewChainService(brandRepo, beneficiaryRepo, relationRepo)
	statsService := service.NewStatsService(brandRepo, chainService)
	brandService := service.NewBrandService(brandRepo, beneficiaryRepo, controversyRepo, categoryRepo, validate)
	beneficiaryService := service.NewBeneficiaryService(beneficiaryRepo, relationRepo, categoryRepo, validate)
	categoryService := service.NewCategoryService(categoryRepo, validate)
	logoService := service.NewLogoService(brandRepo, logoRepo, s3Client, logoClient)
	propositionService := service.NewPropositionService(
		propositionRepo, controversyRepo, brandRepo, categoryRepo, feedService, validate)

	// Getting handlers
	brandRoutes := handler.NewBrandDefault(brandService, statsService, logoService)
	beneficiaryRoutes := handler.NewBeneficiaryDefault(beneficiaryService, chainService)
	categoryRoutes := handler.NewCategoryDefault(categoryService)
	propositionRoutes := handler.NewPropositionDefault(propositionService)
	wsRoutes := handler.NewWSDefault(feedService)

	requireAdmin := adminmw.NewAdminMiddleware(&adminmw.AdminMiddlewareConfig{
		Token: os.Getenv("ADMIN_TOKEN"),
	})
	submissionLimiter := adminmw.NewSubmissionRateLimiter(5, 5, 10*time.Minute)

	e := echo.New()
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("5M"))

	// Brands
	e.GET("/api/brands", brandRoutes.GetBrands)
	e.GET("/api/brands/stats", brandRoutes.GetStats)
	e.GET("/api/brands/:id", brandRoutes.GetBrand)
	e.GET("/api/brands/:id/controversies", brandRoutes.GetControversies)
	e.GET("/api/brands/:id/logo", brandRoutes.GetLogo)

	// Beneficiaries
	e.GET("/api/beneficiaries", beneficiaryRoutes.GetBeneficiaries)
	e.GET("/api/beneficiaries/chain", beneficiaryRoutes.GetChain)
	e.GET("/api/beneficiaries/:id", beneficiaryRoutes.GetBeneficiary)

	// Categories
	e.GET("/api/categories", categoryRoutes.GetCategories)

	// Propositions
	e.POST("/api/propositions", propositionRoutes.CreateProposition, submissionLimiter)
	e.GET("/api/propositions/decisions", propositionRoutes.GetDecisions)

	// Moderation surface
	admin := e.Group("/api", requireAdmin)
	admin.POST("/brands", brandRoutes.CreateBrand)
	admin.PATCH("/brands/:id", brandRoutes.UpdateBrand)
	admin.POST("/brands/:id/beneficiaries", brandRoutes.LinkBeneficiary)
	admin.POST("/brands/:id/controversies", brandRoutes.CreateControversy)
	admin.POST("/brands/:id/logo", brandRoutes.UploadLogo)
	admin.POST("/beneficiaries", beneficiaryRoutes.CreateBeneficiary)
	admin.PATCH("/beneficiaries/:id", beneficiaryRoutes.UpdateBeneficiary)
	admin.POST("/beneficiaries/relations", beneficiaryRoutes.CreateRelation)
	admin.POST("/categories", categoryRoutes.CreateCategory)
	admin.GET("/propositions", propositionRoutes.GetPropositions)
	admin.PATCH("/propositions/:id", propositionRoutes.ReviewProposition)

	// Moderation feed (API Gateway forwards the websocket lifecycle here)
	ws := e.Group("/ws", requireAdmin)
	ws.POST("/connect", wsRoutes.HandleConnect)
	ws.POST("/disconnect", wsRoutes.HandleDisconnect)
	ws.POST("/message", wsRoutes.HandleMessage)

	// Docker Compose healthcheck
	e.GET("/health", healthCheckRoute)

	// Background sweepers
	jobsCtx := context.Background()
	go jobs.NewConnectionCleaner(feedService).Start(jobsCtx)
	go jobs.NewLogoCacheCleaner(logoRepo).Start(jobsCtx)

	if err := e.Start(":7070"); err != nil {
		panic(err)
	}
}

func registerValidators(validate *validator.Validate) {
	_ = validate.RegisterValidation("isodate", validators.ISODate)
	_ = validate.RegisterValidation("nodupes", validators.NoDupes)
}

func machineID() int64 {
	raw := os.Getenv("MACHINE_ID")
	if raw == "" {
		return 1
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Fatalf("invalid MACHINE_ID %q: %v", raw, err)
	}
	return id
}

func loadProdEnv() {
	ctx := context.Background()
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion("us-east-2"))
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	client := ssm.NewFromConfig(cfg)
	out, err := client.GetParametersByPath(ctx, &ssm.GetParametersByPathInput{
		Path:           aws.String(envVarsPrefix),
		WithDecryption: aws.Bool(true),
		Recursive:      aws.Bool(true),
	})
	if err != nil {
		log.Fatalf("unable to load prod environment, %v", err)
	}

	prefixLength := len(envVarsPrefix)
	// Export vars
	for _, param := range out.Parameters {
		key := (*param.Name)[prefixLength:]
		value := *param.Value
		enverr := os.Setenv(key, value)
		if enverr != nil {
			log.Fatalf("unable to set environment variable, %v", enverr)
		}
	}
	log.Debugf("loaded %d prod environment variables", len(out.Parameters))
}

func healthCheckRoute(c echo.Context) error {
	return c.String(200, "OK")
}
