package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/crosscheck/pkg/compare"
	"github.com/agentstation/crosscheck/pkg/records"
)

// Config holds the application configuration loaded from flags, environment
// variables, .env files, and the optional config file.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Run configuration
	ToleranceCurrency   float64
	TolerancePercentage float64
	Workers             int
	DuplicatePolicy     string
	SchemaFile          string
	OutDir              string
	WarningLimit        int

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration in order of precedence: command-line flags
// (applied later by cobra), environment variables, .env files, the config
// file (~/.crosscheck.yaml), and defaults.
func LoadConfig() (*Config, error) {
	loadEnvFiles()

	viper.SetEnvPrefix("CROSSCHECK")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	viper.SetDefault("tolerance_currency", compare.DefaultTolerances().Currency)
	viper.SetDefault("tolerance_percentage", compare.DefaultTolerances().Percentage)
	viper.SetDefault("workers", 1)
	viper.SetDefault("duplicate_policy", string(records.KeepLast))
	viper.SetDefault("out_dir", "output")
	viper.SetDefault("warning_limit", 50)

	configFile := viper.GetString("config")
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.AddConfigPath(".")
			viper.SetConfigType("yaml")
			viper.SetConfigName(".crosscheck")
		}
	}

	// Missing config files are fine; flags and env cover everything.
	_ = viper.ReadInConfig()

	config := &Config{
		Verbose: viper.GetBool("verbose"),
		Quiet:   viper.GetBool("quiet"),
		NoColor: viper.GetBool("no-color"),
		Format:  viper.GetString("format"),

		ConfigFile: viper.ConfigFileUsed(),

		ToleranceCurrency:   viper.GetFloat64("tolerance_currency"),
		TolerancePercentage: viper.GetFloat64("tolerance_percentage"),
		Workers:             viper.GetInt("workers"),
		DuplicatePolicy:     viper.GetString("duplicate_policy"),
		SchemaFile:          viper.GetString("schema"),
		OutDir:              viper.GetString("out_dir"),
		WarningLimit:        viper.GetInt("warning_limit"),

		LogLevel:  getEnvOrDefault("LOG_LEVEL", ""),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput: getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}

	return config, nil
}

// Tolerances returns the configured comparison tolerances.
func (c *Config) Tolerances() compare.Tolerances {
	return compare.Tolerances{
		Currency:   c.ToleranceCurrency,
		Percentage: c.TolerancePercentage,
	}
}

// UpdateFromFlags applies parsed global flag values so flags take precedence
// over config file and environment values.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = noColor
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// loadEnvFiles loads environment variables from .env files.
// .env.local overrides .env.
func loadEnvFiles() {
	for _, envFile := range []string{".env", ".env.local"} {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
