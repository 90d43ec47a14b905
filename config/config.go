package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsinelofficial/metamask-dashboard/model"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type WebServerConfig struct {
	Port            string `mapstructure:"port"`
	IP              string `mapstructure:"ip"`
	ReadTimeout     int    `mapstructure:"read_timeout"`
	WriteTimeout    int    `mapstructure:"write_timeout"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"`
}

type UpstreamConfig struct {
	BaseURL   string `mapstructure:"base_url"`    // Twitter data API root
	APIKeyEnv string `mapstructure:"api_key_env"` // Environment variable holding the credential
}

type DashboardConfig struct {
	Mode            string `mapstructure:"mode"`              // "live" or "static"
	ProxyURL        string `mapstructure:"proxy_url"`         // Where the live source calls the proxy
	RefreshOnStart  bool   `mapstructure:"refresh_on_start"`  // Load data when the server starts
	AlertExcerptLen int    `mapstructure:"alert_excerpt_len"` // Max characters of post text in an alert
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

// ClassifierConfig holds the ordered keyword sets used for activity typing.
// Priority lists set names in match order; a set missing from Priority is ignored.
type ClassifierConfig struct {
	Priority []string            `mapstructure:"priority"`
	Keywords map[string][]string `mapstructure:"keywords"`
}

type Config struct {
	WebServer   WebServerConfig    `mapstructure:"webserver"`
	Upstream    UpstreamConfig     `mapstructure:"upstream"`
	Dashboard   DashboardConfig    `mapstructure:"dashboard"`
	Logging     LoggingConfig      `mapstructure:"logging"`
	Classifier  ClassifierConfig   `mapstructure:"classifier"`
	Competitors []model.Competitor `mapstructure:"competitors"`
}

// Address returns the listen address for the HTTP server
func (c Config) Address() string {
	return fmt.Sprintf("%s:%s", c.WebServer.IP, c.WebServer.Port)
}

// LoadConfig reads config.yaml from the given paths (or the working directory),
// then applies CIDASH_* environment overrides. A missing file is not an error.
func LoadConfig(paths ...string) (Config, error) {
	var config Config

	v := viper.New()
	if len(paths) == 0 {
		paths = []string{"."}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Enable environment variable overrides
	v.SetEnvPrefix("CIDASH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("read config: %w", err)
		}
		log.Warn().Msg("No config file found, using defaults")
	}

	if err := v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("decode config: %w", err)
	}

	if len(config.Competitors) == 0 {
		config.Competitors = DefaultCompetitors()
	}
	if len(config.Classifier.Keywords) == 0 {
		config.Classifier = DefaultClassifier()
	}

	if err := config.Validate(); err != nil {
		return config, err
	}

	return config, nil
}

func MustLoadConfig(paths ...string) Config {
	config, err := LoadConfig(paths...)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	return config
}

// Validate checks invariants the rest of the program relies on
func (c Config) Validate() error {
	switch c.Dashboard.Mode {
	case "live", "static":
	default:
		return fmt.Errorf("dashboard.mode must be live or static, got %q", c.Dashboard.Mode)
	}

	seen := make(map[string]bool, len(c.Competitors))
	for _, comp := range c.Competitors {
		if comp.Name == "" {
			return errors.New("competitor name cannot be empty")
		}
		if seen[comp.Name] {
			return fmt.Errorf("duplicate competitor name %q", comp.Name)
		}
		seen[comp.Name] = true
	}

	for _, name := range c.Classifier.Priority {
		if _, ok := c.Classifier.Keywords[name]; !ok {
			return fmt.Errorf("classifier priority names unknown keyword set %q", name)
		}
	}

	return nil
}

func setDefaults(v *viper.Viper) {
	// WebServer defaults
	v.SetDefault("webserver.port", "8080")
	v.SetDefault("webserver.ip", "127.0.0.1")
	v.SetDefault("webserver.read_timeout", 15)
	v.SetDefault("webserver.write_timeout", 60)
	v.SetDefault("webserver.shutdown_timeout", 30)

	// Upstream defaults
	v.SetDefault("upstream.base_url", "https://api.twitterapi.io")
	v.SetDefault("upstream.api_key_env", "TWITTER_API_KEY")

	// Dashboard defaults
	v.SetDefault("dashboard.mode", "static")
	v.SetDefault("dashboard.proxy_url", "http://127.0.0.1:8080/api/tweets")
	v.SetDefault("dashboard.refresh_on_start", true)
	v.SetDefault("dashboard.alert_excerpt_len", 80)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.pretty", true)
}

// DefaultClassifier returns the built-in keyword sets in priority order
func DefaultClassifier() ClassifierConfig {
	return ClassifierConfig{
		Priority: []string{string(model.TypePartnership), string(model.TypeCampaign)},
		Keywords: map[string][]string{
			string(model.TypePartnership): {"partner", "integration", "collab", "together with"},
			string(model.TypeCampaign):    {"launch", "introducing", "new feature", "now live", "announcing"},
		},
	}
}

// DefaultCompetitors returns the wallets tracked when no config overrides them
func DefaultCompetitors() []model.Competitor {
	return []model.Competitor{
		{Name: "Phantom", Handle: "phantom", Icon: "👻", Color: "#AB9FF2", Category: "Solana DeFi", Partners: []string{"Magic Eden", "Jupiter", "Tensor", "Marinade"}},
		{Name: "Coinbase Wallet", Handle: "CoinbaseWallet", Icon: "🔵", Color: "#0052FF", Category: "EVM Ecosystem", Partners: []string{"Base", "Uniswap", "OpenSea", "Aave"}},
		{Name: "Trust Wallet", Handle: "TrustWallet", Icon: "🛡️", Color: "#3375BB", Category: "BNB Chain", Partners: []string{"PancakeSwap", "Binance", "1inch"}},
		{Name: "Rainbow", Handle: "rainbowdotme", Icon: "🌈", Color: "#FF6B6B", Category: "Ethereum Native", Partners: []string{"Uniswap", "ENS", "Zora"}},
		{Name: "Rabby", Handle: "Rabby_io", Icon: "🐰", Color: "#8697FF", Category: "Analytics", Partners: []string{"DeBank", "DefiLlama"}},
	}
}
