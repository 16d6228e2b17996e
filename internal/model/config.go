package model

import "time"

// Config holds the complete frontierbrief configuration
type Config struct {
	Watchlist   WatchlistConfig   `yaml:"watchlist" mapstructure:"watchlist"`
	Sources     []string          `yaml:"sources" mapstructure:"sources"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
	LLM         LLMConfig         `yaml:"llm" mapstructure:"llm"`
}

// WatchlistConfig defines the research scope printed by the bootstrap command
type WatchlistConfig struct {
	Topics    []string            `yaml:"topics" mapstructure:"topics"`
	Companies map[string][]string `yaml:"companies" mapstructure:"companies"`
}

// CacheConfig controls assessment memoization
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" mapstructure:"enabled"`
	TTL     time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// ConcurrencyConfig controls batch processing
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// OutputConfig controls report rendering
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" mapstructure:"verbose"`
	IncludeFooter bool `yaml:"include_footer" mapstructure:"include_footer"`
}

// LLMConfig configures the optional commentary provider
// The commentary is generated after assessment and never affects scoring
type LLMConfig struct {
	Provider  string `yaml:"provider" mapstructure:"provider"` // openai, ollama, "" (disabled)
	Model     string `yaml:"model" mapstructure:"model"`
	APIKey    string `yaml:"-" mapstructure:"api_key"` // Never written to config files
	BaseURL   string `yaml:"base_url" mapstructure:"base_url"`
	Timeout   int    `yaml:"timeout" mapstructure:"timeout"` // seconds
	MaxTokens int    `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// DefaultConfig returns the built-in configuration
func DefaultConfig() *Config {
	return &Config{
		Watchlist: WatchlistConfig{
			Topics: []string{
				"AI software",
				"AI hardware",
				"AI infrastructure",
				"Space exploration",
				"Critical minerals",
				"Rare earth elements",
				"Robotics",
			},
			Companies: map[string][]string{
				"AI software":         {"Microsoft", "Alphabet", "Meta", "Adobe", "Salesforce", "Palantir"},
				"AI hardware":         {"NVIDIA", "AMD", "Intel", "TSMC", "ASML", "Samsung Electronics"},
				"AI infrastructure":   {"Amazon", "Microsoft", "Alphabet", "Oracle", "Arista Networks", "Vertiv"},
				"Space exploration":   {"Rocket Lab", "Boeing", "Northrop Grumman", "Lockheed Martin", "Maxar"},
				"Critical minerals":   {"Rio Tinto", "BHP", "Glencore", "Freeport-McMoRan", "MP Materials"},
				"Rare earth elements": {"MP Materials", "Lynas Rare Earths", "China Northern Rare Earth Group"},
				"Robotics":            {"ABB", "Fanuc", "Yaskawa", "Teradyne", "Rockwell Automation"},
			},
		},
		Sources: []string{
			"https://x.com/",
			"https://www.reuters.com/",
			"https://www.bloomberg.com/",
			"https://www.ft.com/",
			"https://www.wsj.com/",
			"https://www.cnbc.com/",
		},
		Cache: CacheConfig{
			Enabled: false,
			TTL:     15 * time.Minute,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		Output: OutputConfig{
			Verbose:       false,
			IncludeFooter: true,
		},
		LLM: LLMConfig{
			Provider:  "",
			Model:     "",
			Timeout:   30,
			MaxTokens: 600,
		},
	}
}
