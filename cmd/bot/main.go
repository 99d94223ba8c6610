package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/jianghu-tales/jianghu-bot/internal/config"
	"github.com/jianghu-tales/jianghu-bot/internal/handlers/discord"
	"github.com/jianghu-tales/jianghu-bot/internal/repositories/characters"
	"github.com/jianghu-tales/jianghu-bot/internal/repositories/combats"
	"github.com/jianghu-tales/jianghu-bot/internal/services"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Printf("Application ID: %s", cfg.Discord.AppID)
	if cfg.Discord.GuildID != "" {
		log.Printf("Guild ID: %s", cfg.Discord.GuildID)
	}

	// Create Discord session
	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}

	providerConfig := &services.ProviderConfig{}

	// Keep Redis client for cleanup
	var redisClient *redis.Client

	// Try to connect to Redis; without it the bot runs on in-memory stores
	// and nothing survives a restart
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		opts, parseErr := redis.ParseURL(redisURL)
		if parseErr != nil {
			log.Printf("Failed to parse Redis URL: %v", parseErr)
			log.Println("Falling back to in-memory repositories")
		} else {
			redisClient = redis.NewClient(opts)
		}
	} else {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	if redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if pingErr := redisClient.Ping(ctx).Err(); pingErr != nil {
			cancel()
			log.Printf("Failed to connect to Redis: %v", pingErr)
			log.Println("Falling back to in-memory repositories")
			_ = redisClient.Close()
			redisClient = nil
		} else {
			cancel()
			log.Println("Using Redis for persistence")
			providerConfig.CharacterRepository = characters.NewRedisRepository(&characters.RedisRepoConfig{
				Client: redisClient,
			})
			providerConfig.CombatRepository = combats.NewRedisRepository(redisClient)
		}
	}

	// The handler needs the combat repository directly for its session
	// watchers, so keep a reference that works either way
	combatRepo := providerConfig.CombatRepository
	if combatRepo == nil {
		combatRepo = combats.NewInMemoryRepository()
		providerConfig.CombatRepository = combatRepo
	}

	// Create service provider
	serviceProvider := services.NewProvider(providerConfig)

	// Create Discord handler
	handler := discord.NewHandler(&discord.HandlerConfig{
		ServiceProvider:  serviceProvider,
		CombatRepository: combatRepo,
		Session:          dg,
		PollInterval:     cfg.Combat.PollInterval,
	})

	dg.AddHandler(handler.HandleInteraction)

	// Open connection to Discord
	if err := dg.Open(); err != nil {
		log.Printf("Failed to open Discord connection: %v", err)
		return
	}
	defer func() {
		if closeErr := dg.Close(); closeErr != nil {
			log.Printf("Failed to close Discord connection: %v", closeErr)
		}
	}()

	// Register commands
	if err := handler.RegisterCommands(dg, cfg.Discord.GuildID); err != nil {
		log.Printf("Failed to register commands: %v", err)
		return
	}

	if cfg.Discord.GuildID != "" {
		log.Printf("Registered commands for guild: %s", cfg.Discord.GuildID)
	} else {
		log.Println("Registered global commands (may take up to 1 hour to propagate)")
	}

	fmt.Println("Bot is now running. Press CTRL-C to exit.")

	// Wait for interrupt signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	fmt.Println("Shutting down...")

	handler.Shutdown()

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Printf("Error closing Redis connection: %v", err)
		}
	}
}
