package main

import (
	"log"
	"runtime"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"autovid/config"
	"autovid/handlers"
	"autovid/internal/history"
	"autovid/internal/render"
	"autovid/internal/script"
	"autovid/internal/slideshow"
	"autovid/internal/staging"
	"autovid/internal/transcribe"
	"autovid/internal/tts"
	"autovid/internal/worker"
	"autovid/middleware"
)

func main() {
	config.InitLogger()
	cfg := config.Load()

	layout := staging.NewLayout(cfg.StagingRoot)
	if err := layout.Ensure(); err != nil {
		log.Fatalf("Failed to prepare staging directories: %v", err)
	}
	// Renders that died mid-flight leave their subtitle scratch files behind;
	// sweep them before taking traffic.
	if err := staging.ClearDirectory(layout.Subtitles); err != nil {
		config.Log.WithError(err).Warn("failed to clear stale subtitle files")
	}

	// Chat history is optional; without credentials renders still work, they
	// just are not recorded.
	db, err := config.InitSupabase()
	if err != nil {
		config.Log.WithError(err).Warn("Supabase not configured, chat history disabled")
		db = nil
	}

	scripts := script.NewClient(script.Config{
		Provider:          cfg.ScriptProvider,
		Model:             cfg.ScriptModel,
		TogetherAPIKey:    cfg.TogetherAPIKey,
		TogetherBaseURL:   cfg.TogetherBaseURL,
		HuggingFaceURL:    cfg.HuggingFaceURL,
		HuggingFaceAPIKey: cfg.HuggingFaceAPIKey,
	}, config.Log)

	extractor := slideshow.NewKeywordExtractor(cfg.PythonBin, cfg.NerScript, config.Log)
	fetcher := slideshow.NewFetcher(cfg.PexelsAPIKey, cfg.GiphyAPIKey, extractor, config.Log)
	pool := worker.NewPool(runtime.NumCPU(), config.Log)

	orchestrator := render.NewOrchestrator(
		layout,
		scripts,
		tts.NewClient(cfg.TTSEndpoint, config.Log),
		transcribe.NewWhisper(cfg.PythonBin, cfg.WhisperScript, config.Log),
		fetcher,
		pool,
		config.Log,
	)

	appHandler := handlers.NewApplicationHandler(
		orchestrator,
		history.NewStore(db, config.Log),
		layout,
		config.Log,
	)

	app := fiber.New(fiber.Config{
		BodyLimit: 200 * 1024 * 1024, // uploaded background clips can be large
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, X-User-Id",
	}))
	app.Use(middleware.RequestLogger())

	// Health check route
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "ok",
			"message": "AutoVid backend is running",
		})
	})

	// Produced artifacts are served straight from the staging roots.
	app.Static("/videos", layout.Videos)
	app.Static("/audios", layout.Audios)
	app.Static("/subtitles", layout.Subtitles)

	app.Post("/chat/completions", appHandler.CreateCompletion)

	config.Log.Infof("Starting AutoVid backend on port %s...", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
