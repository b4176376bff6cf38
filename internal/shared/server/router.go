package server

import (
	"context"
	"database/sql"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	googleauth "resumind-backend/internal/auth"
	"resumind-backend/internal/export"
	"resumind-backend/internal/feedback"
	"resumind-backend/internal/llm"
	"resumind-backend/internal/llm/gemini"
	"resumind-backend/internal/llm/openai"
	"resumind-backend/internal/resumes"
	"resumind-backend/internal/shared/config"
	"resumind-backend/internal/shared/metrics"
	"resumind-backend/internal/shared/server/middleware"
	"resumind-backend/internal/shared/server/respond"
	"resumind-backend/internal/shared/storage/kv"
	"resumind-backend/internal/shared/storage/object"
	localstore "resumind-backend/internal/shared/storage/object/local"
	s3store "resumind-backend/internal/shared/storage/object/s3"
	"resumind-backend/internal/shared/telemetry"
	"resumind-backend/internal/usage"
	"resumind-backend/internal/users"
)

// aiRateLimitGroup throttles LLM-backed operations harder than the rest
// of the API.
const aiRateLimitGroup = "AI"

// NewRouter constructs the Gin engine with middleware and routes registered.
// sqlDB may be nil; all stores then fall back to in-memory implementations.
func NewRouter(cfg config.Config, sqlDB *sql.DB) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.Auth(),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				"DEFAULT":        {Rate: 10, Burst: 20},
				aiRateLimitGroup: {Rate: 0.5, Burst: 2},
			},
			GroupFor: aiGroupFor,
		}),
	)

	// Dependencies
	store := newObjectStore(cfg)

	var kvStore kv.Store
	var resumeRepo resumes.Repo
	var userRepo users.Repo
	var usageSvc *usage.Service
	if sqlDB != nil {
		kvStore = kv.NewPGStore(sqlDB)
		resumeRepo = &resumes.PGRepo{DB: sqlDB}
		userRepo = &users.PGRepo{DB: sqlDB}
		usageSvc = usage.NewPostgresService(usage.NewPGStore(sqlDB))
	} else {
		kvStore = kv.NewMemoryStore()
		resumeRepo = resumes.NewMemoryRepo()
		userRepo = users.NewMemoryRepo()
		usageSvc = usage.NewService()
	}

	resumeSvc := resumes.NewService(resumeRepo, store, kvStore)
	userSvc := users.NewService(userRepo)
	client := newLLMClient(cfg)
	feedbackSvc := feedback.NewService(resumeSvc, kvStore, client, usageSvc)

	googleAuthSvc := googleauth.NewGoogleService(
		cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL, cfg.UIRedirectURL, userSvc)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/metrics", metrics.Handler())

	googleAuthSvc.Register(api)
	registerMeRoutes(api)
	resumes.NewHandler(resumeSvc).Register(api)
	feedback.NewHandler(feedbackSvc).Register(api)
	export.NewHandler(resumeSvc, feedbackSvc).Register(api)
	usage.NewHandler(usageSvc).Register(api)

	return r
}

func newObjectStore(cfg config.Config) object.ObjectStore {
	if cfg.ObjectStoreType == "s3" {
		store, err := s3store.New(context.Background(), cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
		if err == nil {
			return store
		}
		telemetry.Error("storage.s3_init_failed", map[string]any{
			"error": err.Error(),
		})
	}
	return localstore.New(cfg.LocalStoreDir)
}

func newLLMClient(cfg config.Config) llm.Client {
	switch cfg.LLMProvider {
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			telemetry.Warn("llm.not_configured", map[string]any{"provider": "gemini"})
			return nil
		}
		client, err := gemini.NewClient(context.Background(), cfg.GeminiAPIKey, cfg.LLMModel)
		if err != nil {
			telemetry.Error("llm.init_failed", map[string]any{"provider": "gemini", "error": err.Error()})
			return nil
		}
		return client
	default:
		if cfg.OpenAIAPIKey == "" {
			telemetry.Warn("llm.not_configured", map[string]any{"provider": "openai"})
			return nil
		}
		client, err := openai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel, cfg.OpenAIBaseURL)
		if err != nil {
			telemetry.Error("llm.init_failed", map[string]any{"provider": "openai", "error": err.Error()})
			return nil
		}
		return client
	}
}

func aiGroupFor(c *gin.Context) string {
	if c.Request.Method != http.MethodPost {
		return ""
	}
	path := c.Request.URL.Path
	for _, suffix := range []string{"/feedback", "/hr-review", "/improve", "/rescore"} {
		if strings.HasSuffix(path, suffix) {
			return aiRateLimitGroup
		}
	}
	return ""
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
