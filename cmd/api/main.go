package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"todo-chatbot/config"
	_ "todo-chatbot/docs" // Swagger docs
	"todo-chatbot/internal/agent"
	"todo-chatbot/internal/agent/orchestrator"
	"todo-chatbot/internal/agent/tools"
	tgDelivery "todo-chatbot/internal/chat/delivery/telegram"
	convMemory "todo-chatbot/internal/conversation/repository/memory"
	"todo-chatbot/internal/httpserver"
	"todo-chatbot/internal/intent"
	"todo-chatbot/internal/middleware"
	"todo-chatbot/internal/oracle"
	taskMemory "todo-chatbot/internal/task/repository/memory"
	"todo-chatbot/pkg/gcalendar"
	"todo-chatbot/pkg/log"
	"todo-chatbot/pkg/telegram"
)

// @title       Todo Chatbot API
// @description Conversational task management with Cohere/OpenAI tool calling, Telegram webhook, and Google Calendar reminders.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Todo Chatbot...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Repositories
	taskRepo := taskMemory.New()
	convRepo := convMemory.New()

	// 4. Google Calendar client (optional)
	var calendarClient tools.CalendarClient
	if cfg.GoogleCalendar.CredentialsPath != "" {
		gcal, gcalErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if gcalErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", gcalErr)
		} else {
			if cfg.GoogleCalendar.CalendarID != "" {
				gcal.SetCalendarID(cfg.GoogleCalendar.CalendarID)
			}
			calendarClient = gcal
			logger.Info(ctx, "✅ Google Calendar initialized")
		}
	}

	// 5. Tool registry and dispatcher
	registry := agent.NewToolRegistry()
	registry.Register(tools.NewAddTaskTool(taskRepo, calendarClient, logger))
	registry.Register(tools.NewListTasksTool(taskRepo, logger))
	registry.Register(tools.NewCompleteTaskTool(taskRepo, logger))
	registry.Register(tools.NewDeleteTaskTool(taskRepo, logger))
	registry.Register(tools.NewUpdateTaskTool(taskRepo, logger))
	dispatcher := agent.NewDispatcher(registry, logger)

	// 6. Oracle (Cohere, OpenAI, or offline mock)
	detector := intent.New()
	chatOracle := oracle.New(oracle.Config{
		Provider: cfg.Oracle.Provider,
		APIKey:   cfg.Oracle.APIKey,
		Model:    cfg.Oracle.Model,
	}, detector, logger)
	logger.Infof(ctx, "Oracle provider: %s", chatOracle.Name())

	// 7. Orchestrator
	orch := orchestrator.New(chatOracle, registry, dispatcher, convRepo, logger)
	orch.SetTemperature(cfg.Oracle.Temperature)

	// 8. Telegram webhook (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		telegramBot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, telegramBot, orch)

		if cfg.Telegram.WebhookURL != "" {
			if whErr := telegramBot.SetWebhook(cfg.Telegram.WebhookURL); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "✅ Telegram webhook registered at %s", cfg.Telegram.WebhookURL)
			}
		}
	} else {
		logger.Warn(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 9. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Orchestrator:    orch,
		Middleware:      middleware.New(logger, cfg),
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
