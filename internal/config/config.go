package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the System Notes backend
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	LLM     LLMConfig     `mapstructure:"llm"`
	Algolia AlgoliaConfig `mapstructure:"algolia"`
	Blog    BlogConfig    `mapstructure:"blog"`
	Content ContentConfig `mapstructure:"content"`
	CORS    CORSConfig    `mapstructure:"cors"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// LLMConfig holds LLM provider configuration
type LLMConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// AlgoliaConfig holds search capability configuration
type AlgoliaConfig struct {
	AppID  string `mapstructure:"app_id"`
	APIKey string `mapstructure:"api_key"`
}

// BlogConfig holds blog catalog configuration
type BlogConfig struct {
	SitemapURL   string        `mapstructure:"sitemap_url"`
	PathMarker   string        `mapstructure:"path_marker"`
	FetchTimeout time.Duration `mapstructure:"fetch_timeout"`
	CacheTTL     time.Duration `mapstructure:"cache_ttl"`
	EmptyTTL     time.Duration `mapstructure:"empty_ttl"`
}

// ContentConfig holds paths for file-backed endpoints
type ContentConfig struct {
	ProjectsFile string `mapstructure:"projects_file"`
	AboutFile    string `mapstructure:"about_file"`
	DocsDir      string `mapstructure:"docs_dir"`
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// Load loads configuration from file and environment
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("SYSNOTES")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found, use defaults
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)

	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.model", "gpt-4o-mini")
	v.SetDefault("llm.timeout", 10*time.Second)

	v.SetDefault("algolia.app_id", "")
	v.SetDefault("algolia.api_key", "")

	v.SetDefault("blog.sitemap_url", "https://crawly.checkmarkdevtools.dev/sitemap.xml")
	v.SetDefault("blog.path_marker", "/posts/")
	v.SetDefault("blog.fetch_timeout", 10*time.Second)
	v.SetDefault("blog.cache_ttl", 15*time.Minute)
	v.SetDefault("blog.empty_ttl", time.Minute)

	v.SetDefault("content.projects_file", "./data/projects/index.json")
	v.SetDefault("content.about_file", "./data/about.md")
	v.SetDefault("content.docs_dir", "./data/docs")

	v.SetDefault("cors.allow_origins", []string{"*"})
}

// Address returns the server address
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
