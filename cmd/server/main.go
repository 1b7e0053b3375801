package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dashteam/dashteam/internal/api"
	"github.com/dashteam/dashteam/internal/api/controller"
	"github.com/dashteam/dashteam/internal/config"
	"github.com/dashteam/dashteam/internal/infrastructure/database"
	"github.com/dashteam/dashteam/internal/infrastructure/llm"
	"github.com/dashteam/dashteam/internal/infrastructure/sheets"
	"github.com/dashteam/dashteam/internal/repository"
	"github.com/dashteam/dashteam/internal/service"
)

func main() {
	// 1. 初始化 Logger，JSON 格式方便解析
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		AddSource: true,
		Level:     slog.LevelDebug, // 生产环境改为 Info
	}))
	slog.SetDefault(logger)

	slog.Info("Dashteam 系统启动中...")

	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("无法加载配置: %v", err)
	}
	log.Println("配置加载成功")

	// 2. Infra Initialization
	db := database.NewMySQLConnection(conf.Database.DSN) // 这里会自动建表
	assistantClient := llm.NewAssistantClient(conf.Assistant.APIKey, conf.Assistant.BaseURL, conf.Assistant.Model)
	csvFetcher := sheets.NewCSVFetcher()

	gin.SetMode(conf.Server.Mode)

	// 3. Layer Wiring (依赖注入)
	userRepo := repository.NewUserRepo(db)
	contactRepo := repository.NewContactRepo(db)
	followupRepo := repository.NewFollowupRepo(db)
	checklistRepo := repository.NewChecklistRepo(db)
	transactionRepo := repository.NewTransactionRepo(db)
	subscriptionRepo := repository.NewSubscriptionRepo(db)
	sheetRepo := repository.NewSheetRepo(db)
	battlePlanRepo := repository.NewBattlePlanRepo(db)

	authSvc := service.NewAuthService(userRepo)
	contactSvc := service.NewContactService(contactRepo)
	followupSvc := service.NewFollowupService(followupRepo, checklistRepo)
	financeSvc := service.NewFinanceService(transactionRepo, subscriptionRepo)
	calendarSvc := service.NewCalendarService(contactRepo, followupRepo)
	sheetSvc := service.NewSheetService(sheetRepo, contactRepo, followupRepo, csvFetcher)
	activitySvc := service.NewActivityService()
	battlePlanSvc := service.NewBattlePlanService(battlePlanRepo)
	assistantSvc := service.NewAssistantService(assistantClient)

	// 后台同步已连接的 Google Sheets
	if conf.Sheets.SyncIntervalSec > 0 {
		syncCtx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go sheetSvc.RunAutoSync(syncCtx, time.Duration(conf.Sheets.SyncIntervalSec)*time.Second)
	}

	// 4. Server Start
	r := gin.Default()
	api.RegisterRoutes(r, api.Controllers{
		Auth:       controller.NewAuthController(authSvc),
		Contact:    controller.NewContactController(contactSvc),
		Followup:   controller.NewFollowupController(followupSvc),
		Finance:    controller.NewFinanceController(financeSvc),
		Calendar:   controller.NewCalendarController(calendarSvc),
		Sheet:      controller.NewSheetController(sheetSvc),
		Activity:   controller.NewActivityController(activitySvc),
		BattlePlan: controller.NewBattlePlanController(battlePlanSvc),
		Assistant:  controller.NewAssistantController(assistantSvc),
	})

	slog.Info("Dashteam Web Server 启动中", "port", conf.Server.Port)
	if err := r.Run(conf.Server.Port); err != nil {
		slog.Error("服务器启动失败", "error", err)
	}
}
