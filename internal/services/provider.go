package services

import (
	"github.com/jianghu-tales/jianghu-bot/internal/dice"
	"github.com/jianghu-tales/jianghu-bot/internal/repositories/characters"
	"github.com/jianghu-tales/jianghu-bot/internal/repositories/combats"
	characterService "github.com/jianghu-tales/jianghu-bot/internal/services/character"
	combatService "github.com/jianghu-tales/jianghu-bot/internal/services/combat"
	"github.com/jianghu-tales/jianghu-bot/internal/uuid"
)

// Provider holds all service instances
type Provider struct {
	CharacterService characterService.Service
	CombatService    combatService.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	CharacterRepository characters.Repository
	CombatRepository    combats.Repository
	Roller              dice.Roller
	UUIDGenerator       uuid.Generator
}

// NewProvider creates a new service provider with all services initialized.
// Missing repositories fall back to in-memory implementations so the bot
// still runs without Redis, just without persistence.
func NewProvider(cfg *ProviderConfig) *Provider {
	charRepo := cfg.CharacterRepository
	if charRepo == nil {
		charRepo = characters.NewInMemoryRepository()
	}

	combatRepo := cfg.CombatRepository
	if combatRepo == nil {
		combatRepo = combats.NewInMemoryRepository()
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.NewRandomRoller()
	}

	uuidGenerator := cfg.UUIDGenerator
	if uuidGenerator == nil {
		uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}

	charService := characterService.NewService(&characterService.ServiceConfig{
		Repository:       charRepo,
		CombatRepository: combatRepo,
		UUIDGenerator:    uuidGenerator,
	})

	combatSvc := combatService.NewService(&combatService.ServiceConfig{
		Repository:          combatRepo,
		CharacterRepository: charRepo,
		Roller:              roller,
		UUIDGenerator:       uuidGenerator,
	})

	return &Provider{
		CharacterService: charService,
		CombatService:    combatSvc,
	}
}
