package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/safeguard-ai/agentic/adapters/http"
	"github.com/safeguard-ai/agentic/adapters/llm"
	"github.com/safeguard-ai/agentic/adapters/message_broker"
	"github.com/safeguard-ai/agentic/adapters/ocr"
	"github.com/safeguard-ai/agentic/adapters/tts"
	"github.com/safeguard-ai/agentic/adapters/websocket"
	"github.com/safeguard-ai/agentic/config"
	"github.com/safeguard-ai/agentic/usecase"
)

func main() {
	cfg := config.Load()

	gemini := llm.NewGeminiClient(cfg)
	vision := ocr.NewGoogleVision()
	voice := tts.NewGoogleTTS()
	broker := message_broker.NewChannelBroker()
	defer broker.Close()

	simulation := usecase.NewSimulationService(gemini, voice, broker)
	reports := usecase.NewReportService(gemini)
	diagnosis := usecase.NewDiagnosisService(vision, gemini)

	feed := websocket.NewServer(broker)
	feed.RunHub()

	handler := http.NewHandler(simulation, reports, diagnosis, cfg.JWTSecret, cfg.APIKey, cfg.APISecret)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.Secure())
	e.Use(middleware.BodyLimit("10MB"))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"}, // BE-only service; tighten when exposed
		AllowMethods: []string{echo.GET, echo.POST, echo.OPTIONS},
		AllowHeaders: []string{
			echo.HeaderOrigin,
			echo.HeaderContentType,
			echo.HeaderAccept,
			echo.HeaderAuthorization,
			"X-API-Key",
			"X-API-Secret",
		},
	}))

	e.GET("/", handler.Root)
	e.POST("/auth/token", handler.GenerateJWT)

	simGroup := e.Group("/simulation", handler.JWTMiddleware)
	simGroup.POST("/adaptive_turn", handler.AdaptiveTurn)
	simGroup.POST("/voice_turn", handler.VoiceTurn)

	analysisGroup := e.Group("/analysis", handler.JWTMiddleware)
	analysisGroup.POST("/basic_report", handler.BasicReport)
	analysisGroup.POST("/premium_report", handler.PremiumReport)

	diagnoseGroup := e.Group("/diagnose", handler.JWTMiddleware)
	diagnoseGroup.POST("/image", handler.DiagnoseImage)

	wsGroup := e.Group("/ws", handler.JWTMiddleware)
	wsGroup.GET("", feed.Handler)

	log.Printf("Starting Safeguard AI server on :%s", cfg.Port)
	log.Fatal(e.Start(":" + cfg.Port))
}
