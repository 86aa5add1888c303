package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"boutique-pos/internal/auth"
	"boutique-pos/internal/cart"
	"boutique-pos/internal/catalog"
	"boutique-pos/internal/handlers"
	"boutique-pos/internal/localstore"
	"boutique-pos/internal/logger"
	"boutique-pos/internal/settings"

	"github.com/gin-contrib/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found")
	}

	logger.Initialize(os.Getenv("APP_ENV"))
	defer logger.Log.Sync()

	// --- Persistence: the localStorage stand-in ---
	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}
	store, err := localstore.Open(dataDir)
	if err != nil {
		logger.Log.Fatal("Failed to open data directory", zap.Error(err))
	}

	// --- Services, constructed explicitly and passed by reference ---
	cat, err := catalog.NewStore(store)
	if err != nil {
		logger.Log.Fatal("Failed to load catalog", zap.Error(err))
	}

	engine := cart.NewEngine(cat)

	verifier, err := auth.DefaultVerifier(loginDelay())
	if err != nil {
		logger.Log.Fatal("Failed to build credential table", zap.Error(err))
	}
	session, err := auth.NewSession(verifier, store)
	if err != nil {
		logger.Log.Fatal("Failed to restore session", zap.Error(err))
	}

	cfg, err := settings.NewService(store)
	if err != nil {
		logger.Log.Fatal("Failed to load settings", zap.Error(err))
	}

	h := handlers.New(cat, engine, session, cfg, settings.NoopPrinter{})

	corsMiddleware := cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"}, // the React dev server
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})

	r := handlers.NewRouter(h, corsMiddleware, logger.RequestLogger())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logger.Log.Info("Server starting", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		logger.Log.Fatal("Server failed to start", zap.Error(err))
	}
}

// loginDelay reads LOGIN_DELAY_MS; the mock verifier sleeps this long to feel
// like a real backend. Defaults to 500ms.
func loginDelay() time.Duration {
	if v := os.Getenv("LOGIN_DELAY_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms >= 0 {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return 500 * time.Millisecond
}
