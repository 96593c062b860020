package config

import (
	"os"
	"strconv"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Fetch     FetchConfig     `yaml:"fetch"`
	LLM       LLMConfig       `yaml:"llm"`
	Workspace WorkspaceConfig `yaml:"workspace"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
	Mode string `yaml:"mode"` // debug, release
}

type FetchConfig struct {
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

type LLMConfig struct {
	TimeoutSeconds int `yaml:"timeout_seconds"`
	MaxTokens      int `yaml:"max_tokens"`

	// Optional base URL overrides for the OpenAI-compatible providers.
	OpenAIBaseURL     string `yaml:"openai_base_url"`
	GroqBaseURL       string `yaml:"groq_base_url"`
	OpenRouterBaseURL string `yaml:"openrouter_base_url"`
}

type WorkspaceConfig struct {
	Dir string `yaml:"dir"`
}

func (f FetchConfig) Timeout() time.Duration {
	return time.Duration(f.TimeoutSeconds) * time.Second
}

func (l LLMConfig) Timeout() time.Duration {
	return time.Duration(l.TimeoutSeconds) * time.Second
}

var (
	cfg  *Config
	once sync.Once
)

func GetConfig() *Config {
	once.Do(func() {
		cfg = loadConfig()
	})
	return cfg
}

func loadConfig() *Config {
	config := &Config{
		Server: ServerConfig{
			Port: "8000",
			Mode: "debug",
		},
		Fetch: FetchConfig{
			TimeoutSeconds: 10,
		},
		LLM: LLMConfig{
			TimeoutSeconds: 120,
			MaxTokens:      4096,
		},
		Workspace: WorkspaceConfig{
			Dir: os.TempDir(),
		},
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}

	data, err := os.ReadFile(configPath)
	if err == nil {
		yaml.Unmarshal(data, config)
	}

	// Environment variables take precedence over the config file.
	if port := os.Getenv("PORT"); port != "" {
		config.Server.Port = port
	}
	if mode := os.Getenv("SERVER_MODE"); mode != "" {
		config.Server.Mode = mode
	}
	if dir := os.Getenv("WORKSPACE_DIR"); dir != "" {
		config.Workspace.Dir = dir
	}
	if timeout := os.Getenv("FETCH_TIMEOUT_SECONDS"); timeout != "" {
		if v, err := strconv.Atoi(timeout); err == nil && v > 0 {
			config.Fetch.TimeoutSeconds = v
		}
	}
	if timeout := os.Getenv("LLM_TIMEOUT_SECONDS"); timeout != "" {
		if v, err := strconv.Atoi(timeout); err == nil && v > 0 {
			config.LLM.TimeoutSeconds = v
		}
	}

	return config
}

func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
