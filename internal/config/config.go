package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Logger    LoggerConfig
	LLM       LLMConfig
	Redis     RedisConfig
	Storage   StorageConfig
	Retriever RetrieverConfig
	Engine    EngineConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type LoggerConfig struct {
	Level string
	Env   string
}

// LLMConfig covers both generation-backend tiers. The primary tier is an
// Ollama-compatible server; the secondary tier is the OpenAI API. Either may
// be left unconfigured, in which case the engine runs on static fallbacks.
type LLMConfig struct {
	ServerURL   string
	Model       string
	Timeout     time.Duration
	OpenAIKey   string
	OpenAIModel string
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type StorageConfig struct {
	SQLitePath string
}

type RetrieverConfig struct {
	// VectorIndex enables the embedded vector index. Requires the primary
	// LLM server for embeddings; off means deterministic static corpus.
	VectorIndex    bool
	EmbeddingModel string
}

// EngineConfig holds the tunable selection ratios. The values mirror the
// source system's behavior and are deliberately configuration, not code.
type EngineConfig struct {
	FavoriteThemeBias  float64 // StartQuiz: chance to reuse the favorite theme
	PreferredThemeBias float64 // rotation: chance to pick a preferred theme
	PrefetchEnabled    bool
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../config")
		viper.AddConfigPath("../../")
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	viper.AutomaticEnv()

	viper.SetDefault("server.port", 8090)
	viper.SetDefault("server.read_timeout", 20)
	viper.SetDefault("server.write_timeout", 20)
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("llm.model", "qwen3:0.6b")
	viper.SetDefault("llm.timeout", 20)
	viper.SetDefault("llm.openai_model", "gpt-4o-mini")
	viper.SetDefault("storage.sqlite_path", "oracle.db")
	viper.SetDefault("retriever.embedding_model", "nomic-embed-text")
	viper.SetDefault("engine.favorite_theme_bias", 0.6)
	viper.SetDefault("engine.preferred_theme_bias", 0.4)
	viper.SetDefault("engine.prefetch_enabled", true)

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; defaults plus env cover it.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
		LLM: LLMConfig{
			ServerURL:   viper.GetString("llm.server"),
			Model:       viper.GetString("llm.model"),
			Timeout:     viper.GetDuration("llm.timeout") * time.Second,
			OpenAIKey:   viper.GetString("llm.openai_key"),
			OpenAIModel: viper.GetString("llm.openai_model"),
		},
		Redis: RedisConfig{
			Address:  viper.GetString("redis.address"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		Storage: StorageConfig{
			SQLitePath: viper.GetString("storage.sqlite_path"),
		},
		Retriever: RetrieverConfig{
			VectorIndex:    viper.GetBool("retriever.vector_index"),
			EmbeddingModel: viper.GetString("retriever.embedding_model"),
		},
		Engine: EngineConfig{
			FavoriteThemeBias:  viper.GetFloat64("engine.favorite_theme_bias"),
			PreferredThemeBias: viper.GetFloat64("engine.preferred_theme_bias"),
			PrefetchEnabled:    viper.GetBool("engine.prefetch_enabled"),
		},
	}

	// Override with environment variables if set
	if llmServer := os.Getenv("LLM_SERVER"); llmServer != "" {
		config.LLM.ServerURL = llmServer
	}
	if openAIKey := os.Getenv("OPENAI_API_KEY"); openAIKey != "" {
		config.LLM.OpenAIKey = openAIKey
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}
	if sqlitePath := os.Getenv("SQLITE_PATH"); sqlitePath != "" {
		config.Storage.SQLitePath = sqlitePath
	}

	return config, nil
}
