// @title           Bible Reader API
// @version         1.0
// @description     Typed procedures over the Bible content API and the Gemini generative API, plus a server-rendered reader.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.email  shuvoedward@gmail.com

// @host      localhost:4000
// @BasePath  /v1

package main

import (
	"context"
	"flag"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/joho/godotenv"

	"shuvoedward/Bible_reader/internal/cache"
	"shuvoedward/Bible_reader/internal/data"
	"shuvoedward/Bible_reader/internal/gemini"
	"shuvoedward/Bible_reader/internal/image_compress"
	"shuvoedward/Bible_reader/internal/ratelimit"
	"shuvoedward/Bible_reader/internal/reader"
	"shuvoedward/Bible_reader/internal/rpc"
	"shuvoedward/Bible_reader/internal/service"
	"shuvoedward/Bible_reader/internal/upstream"
)

var (
	version = "1.0.0"
)

type config struct {
	port              int
	env               string
	bibleAPIURL       string
	upstreamTimeout   time.Duration
	corsTrustedOrigin string

	gemini struct {
		model       string
		visionModel string
	}

	ratelimit struct {
		generation       int
		generationWindow time.Duration
	}

	reader struct {
		version      string
		book         string
		sessionStore string
		sessionTTL   time.Duration
	}

	image struct {
		maxDimension int
		quality      int
	}

	redisConfig cache.RedisConfig
}

// sessionBackend is a reader.Backend the server must close on shutdown.
type sessionBackend interface {
	reader.Backend
	Close() error
}

type application struct {
	config            config
	logger            *slog.Logger
	procedures        *rpc.Router
	sessions          *reader.Sessions
	sessionBackend    sessionBackend
	generationLimiter *ratelimit.RateLimiter
	templates         *template.Template
	wg                sync.WaitGroup
}

func main() {
	var cfg config

	flag.IntVar(&cfg.port, "port", 4000, "API server port")
	flag.StringVar(&cfg.env, "env", "development", "Environment (development|staging|production)")

	flag.StringVar(&cfg.bibleAPIURL, "bible-api-url", "https://www.abibliadigital.com.br/api", "Bible content API base URL")
	flag.DurationVar(&cfg.upstreamTimeout, "upstream-timeout", 30*time.Second, "Timeout for one upstream call")
	flag.StringVar(&cfg.corsTrustedOrigin, "cors-trusted-origin", "*", "Trusted CORS origin")

	flag.StringVar(&cfg.gemini.model, "gemini-model", gemini.DefaultModel, "Default Gemini text model")
	flag.StringVar(&cfg.gemini.visionModel, "gemini-vision-model", gemini.DefaultVisionModel, "Default Gemini vision model")

	flag.IntVar(&cfg.ratelimit.generation, "gemini-rate-limit", 10, "Generative calls allowed per client per window")
	flag.DurationVar(&cfg.ratelimit.generationWindow, "gemini-rate-window", time.Minute, "Generative rate limit window")

	flag.StringVar(&cfg.reader.version, "reader-version", "nvi", "Translation opened by a new reader panel")
	flag.StringVar(&cfg.reader.book, "reader-book", "gn", "Book opened by a new reader panel")
	flag.StringVar(&cfg.reader.sessionStore, "session-store", "memory", "Reader session store (memory|redis)")
	flag.DurationVar(&cfg.reader.sessionTTL, "session-ttl", 24*time.Hour, "Reader session lifetime")

	flag.IntVar(&cfg.image.maxDimension, "image-max-dimension", 1600, "Largest image side sent to the vision model")
	flag.IntVar(&cfg.image.quality, "image-quality", 85, "JPEG quality of resized images")

	flag.StringVar(&cfg.redisConfig.Host, "redis-host", "localhost", "Redis Host")
	flag.StringVar(&cfg.redisConfig.Port, "redis-port", "6379", "Redis Port")
	flag.StringVar(&cfg.redisConfig.Password, "redis-password", "", "Redis Password")
	flag.IntVar(&cfg.redisConfig.DB, "redis-db", 0, "Redis DB")
	flag.IntVar(&cfg.redisConfig.PoolSize, "redis-poolsize", 10, "Redis Pool Size")

	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// A missing .env is normal outside development.
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file loaded", "error", err)
	}

	bibleClient, err := upstream.New(upstream.Config{
		Name:    "bible",
		BaseURL: cfg.bibleAPIURL,
		Token:   os.Getenv("BIBLE_API_KEY"),
		Timeout: cfg.upstreamTimeout,
	})
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}

	geminiClient, err := gemini.New(context.Background(), gemini.Config{
		APIKey:       os.Getenv("GEMINI_API_KEY"),
		DefaultModel: cfg.gemini.model,
		VisionModel:  cfg.gemini.visionModel,
	})
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}

	images := service.NewImageService(
		&http.Client{Timeout: cfg.upstreamTimeout},
		image_compress.New(cfg.image.maxDimension, cfg.image.quality),
		logger,
	)

	services := service.NewServices(bibleClient, geminiClient, images, logger)

	backend, err := openSessionBackend(cfg)
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
	logger.Info("reader session store ready", "store", cfg.reader.sessionStore)

	templates, err := parseTemplates()
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}

	app := &application{
		config:            cfg,
		logger:            logger,
		procedures:        newProcedureRouter(services),
		sessions:          reader.NewSessions(backend, logger),
		sessionBackend:    backend,
		generationLimiter: ratelimit.NewRateLimiter(cfg.ratelimit.generation, cfg.ratelimit.generationWindow),
		templates:         templates,
	}

	err = app.serve(NewHandlers(app, services))
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

func openSessionBackend(cfg config) (sessionBackend, error) {
	switch cfg.reader.sessionStore {
	case "memory":
		return reader.NewMemoryBackend(cfg.reader.sessionTTL, time.Minute), nil
	case "redis":
		client, err := cache.NewRedisClient(cfg.redisConfig, cfg.reader.sessionTTL)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown session store %q", cfg.reader.sessionStore)
	}
}

func (cfg config) defaultSelection() data.Selection {
	return data.Selection{Version: cfg.reader.version, Book: cfg.reader.book, Chapter: 1}
}
