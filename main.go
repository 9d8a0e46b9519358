package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-mazegen/api"
	api_i "github.com/beka-birhanu/vinom-mazegen/api/i"
	"github.com/beka-birhanu/vinom-mazegen/api/mazeapi"
	"github.com/beka-birhanu/vinom-mazegen/config"
	"github.com/beka-birhanu/vinom-mazegen/infrastruture/cache"
	"github.com/beka-birhanu/vinom-mazegen/infrastruture/codec"
	logger "github.com/beka-birhanu/vinom-mazegen/infrastruture/log"
	"github.com/beka-birhanu/vinom-mazegen/infrastruture/repo"
	"github.com/beka-birhanu/vinom-mazegen/infrastruture/sortedstorage"
	"github.com/beka-birhanu/vinom-mazegen/infrastruture/token"
	"github.com/beka-birhanu/vinom-mazegen/service"
	"github.com/beka-birhanu/vinom-mazegen/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// rankingCapacity is the number of mazes kept in the hardest-maze ranking.
const rankingCapacity = 1000

// Global variables for dependencies
var (
	mongoClient    *mongo.Client
	redisClient    *redis.Client
	mazeRepo       *repo.MazeRepo
	mazeCache      i.MazeCache
	mazeRanking    i.SortedSet
	jwtTokenizer   i.Tokenizer
	mazeService    i.MazeService
	mazeController api_i.Controller
	router         *api.Router
	appLogger      *slog.Logger
)

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     config.Envs.RedisAddr,
		Password: config.Envs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initMazeRepo(ctx context.Context, client *mongo.Client) {
	mazeRepo = repo.NewMazeRepo(client, config.Envs.DBName, "mazes")
	if err := mazeRepo.EnsureIndexes(ctx); err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze indexes: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze repository initialized")
}

func initMazeCache(client *redis.Client) {
	var err error
	mazeCache, err = cache.NewRedisMazeCache(client, codec.NewBSON(), config.Envs.CacheTTLSeconds)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze cache: %v", err))
		os.Exit(1)
	}

	mazeRanking, err = sortedstorage.NewRedisSortedSet(client, rankingCapacity)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze ranking: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze cache initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initMazeService() {
	serviceLogger, err := logger.New("MAZE-SERVICE", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze service logger: %v", err))
		os.Exit(1)
	}

	mazeService, err = service.NewMazeService(service.Config{
		Repo:      mazeRepo,
		Cache:     mazeCache,
		Ranking:   mazeRanking,
		Tokenizer: jwtTokenizer,
		Logger:    serviceLogger,
		Seed:      time.Now().UnixNano(),
		MaxBatch:  config.Envs.MaxBatch,
		TokenTTL:  time.Duration(config.Envs.ReplayTokenTTLHours) * time.Hour,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze service initialized")
}

func initMazeController() {
	controllerLogger, err := logger.New("MAZE-API", config.ColorPurple, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller logger: %v", err))
		os.Exit(1)
	}

	mazeController, err = mazeapi.NewMazeController(mazeService, controllerLogger)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze controller initialized")
}

func initRouter() {
	gin.SetMode(config.Envs.GinMode)
	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:     "/api",
		Controllers: []api_i.Controller{mazeController},
	})
	appLogger.Info("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel() // Ensure the context is always canceled

	// Initialize dependencies
	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stdout)
	config.Load()

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	initRedis(ctx)
	defer redisClient.Close()

	initMazeRepo(ctx, mongoClient)
	initMazeCache(redisClient)
	initJWTTokenizer()
	initMazeService()
	initMazeController()
	initRouter()

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
