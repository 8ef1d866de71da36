package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/ArowuTest/bridgetunes-lottery/internal/models"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	JWT      JWTConfig
	Admin    AdminConfig
	Game     GameConfig
	Lottery  models.LotteryConfig
	LogLevel string
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port         string
	AllowedHosts []string
}

// JWTConfig holds JWT-specific configuration
type JWTConfig struct {
	Secret    string
	ExpiresIn int // seconds
}

// AdminConfig holds the credentials allowed to run the draw over HTTP
type AdminConfig struct {
	Username     string
	PasswordHash string // bcrypt
}

// GameConfig holds settings for the random source
type GameConfig struct {
	Seed         int64 // 0 seeds from the clock
	SecureRandom bool  // use crypto/rand instead of a seeded source
}

// Load loads configuration from environment variables and config files.
// Config files are searched for in paths, defaulting to . and ./config.
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{".", "./config"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file is not found, we'll use environment variables
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	hook := mapstructure.ComposeDecodeHookFunc(
		decimalHook(),
		mapstructure.StringToSliceHookFunc(","),
	)
	if err := v.Unmarshal(&config, viper.DecodeHook(hook)); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	config.Server.Port = GetEnv("PORT", config.Server.Port)
	config.Server.AllowedHosts = GetEnvAsSlice("ALLOWED_HOSTS", ",", config.Server.AllowedHosts)

	if err := config.Lottery.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// setDefaults sets default values for configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("Server.Port", "4000")
	v.SetDefault("Server.AllowedHosts", []string{"localhost:3000"})
	v.SetDefault("JWT.Secret", "")
	v.SetDefault("JWT.ExpiresIn", 24*60*60) // 24 hours
	v.SetDefault("Admin.Username", "admin")
	v.SetDefault("Admin.PasswordHash", "")
	v.SetDefault("Game.Seed", 0)
	v.SetDefault("Game.SecureRandom", false)
	v.SetDefault("LogLevel", "info")

	d := models.DefaultLotteryConfig()
	tiers := map[string]models.PrizeTier{
		"GrandPrize": d.GrandPrize,
		"SecondTier": d.SecondTier,
		"ThirdTier":  d.ThirdTier,
	}
	for key, tier := range tiers {
		v.SetDefault("Lottery."+key+".Name", tier.Name)
		v.SetDefault("Lottery."+key+".PrizePercentage", tier.PrizePercentage.String())
		v.SetDefault("Lottery."+key+".WinnerPercentage", tier.WinnerPercentage.String())
		v.SetDefault("Lottery."+key+".FixedWinnerCount", tier.FixedWinnerCount)
	}
	v.SetDefault("Lottery.HousePercentage", d.HousePercentage.String())
	v.SetDefault("Lottery.MinTicketNumber", d.MinTicketNumber)
	v.SetDefault("Lottery.MaxTicketNumber", d.MaxTicketNumber)
	v.SetDefault("Lottery.DefaultPlayerBalance", d.DefaultPlayerBalance.String())
	v.SetDefault("Lottery.DefaultTicketCost", d.DefaultTicketCost.String())
	v.SetDefault("Lottery.MinPlayers", d.MinPlayers)
	v.SetDefault("Lottery.MaxPlayers", d.MaxPlayers)
	v.SetDefault("Lottery.MaxTicketsPerPlayer", d.MaxTicketsPerPlayer)
}

// decimalHook decodes strings and numbers into decimal.Decimal
func decimalHook() mapstructure.DecodeHookFuncType {
	target := reflect.TypeOf(decimal.Decimal{})
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to != target {
			return data, nil
		}
		switch value := data.(type) {
		case string:
			if strings.TrimSpace(value) == "" {
				return decimal.Zero, nil
			}
			return decimal.NewFromString(strings.TrimSpace(value))
		case float64:
			return decimal.NewFromFloat(value), nil
		case float32:
			return decimal.NewFromFloat32(value), nil
		case int:
			return decimal.NewFromInt(int64(value)), nil
		case int64:
			return decimal.NewFromInt(value), nil
		case decimal.Decimal:
			return value, nil
		default:
			return nil, fmt.Errorf("cannot decode %T into decimal", data)
		}
	}
}
