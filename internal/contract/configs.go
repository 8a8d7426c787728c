package contract

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/augur-cli/augur/schema"
)

// Default values for configuration.
const (
	DefaultSteps       = 3
	MaxSteps           = 30
	DefaultResultLimit = 20
	MaxResultLimit     = 1000
	DefaultPrecision   = 2
	MaxPrecision       = 6
	DefaultTimes       = 1
	MaxTimes           = 10
	MinSeriesPoints    = 2
)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// Config holds the runtime configuration for a single invocation.
// This struct remains the "final, validated" config.
type Config struct {
	Output     schema.OutputMode
	OutputFile string
	Precision  int
	Width      int // Terminal width override (0 = auto-detect)
	UseColors  bool

	Series    []float64
	Steps     int
	Algorithm schema.Algorithm

	Method    schema.CastMethod
	Year      int
	Month     int
	Day       int
	Hour      int
	Direction string
	Seed      int64
	SeedSet   bool

	Question  string
	Template  string
	Variables map[string]string
	Times     int

	ResultLimit int

	HistoryBackend   schema.DatabaseBackend
	HistoryDBConnect string // Please use env var as this is plaintext

	TemplatesDir string

	APIKey  string // Please use env var as this is plaintext
	BaseURL string
	Model   string
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// These are set manually from positional args, so no tag
	QuestionStr string
	TemplateStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Output           string `mapstructure:"output"`
	OutputFile       string `mapstructure:"output-file"`
	Precision        int    `mapstructure:"precision"`
	Width            int    `mapstructure:"width"`
	Color            string `mapstructure:"color"`
	HistoryBackend   string `mapstructure:"history-backend"`
	HistoryDBConnect string `mapstructure:"history-db-connect"`
	TemplatesDir     string `mapstructure:"templates-dir"`
	APIKey           string `mapstructure:"api-key"`
	BaseURL          string `mapstructure:"base-url"`
	Model            string `mapstructure:"model"`

	// --- Fields from forecastCmd.Flags() ---
	Data      string `mapstructure:"data"`
	Steps     int    `mapstructure:"steps"`
	Algorithm string `mapstructure:"algorithm"`

	// --- Fields from castCmd.Flags() ---
	Method    string `mapstructure:"method"`
	Year      int    `mapstructure:"year"`
	Month     int    `mapstructure:"month"`
	Day       int    `mapstructure:"day"`
	Hour      int    `mapstructure:"hour"`
	Direction string `mapstructure:"direction"`
	Seed      string `mapstructure:"seed"`

	// --- Fields from oracleCmd.Flags() ---
	Variables string `mapstructure:"variables"`
	Times     int    `mapstructure:"times"`

	// --- Fields from historyCmd.Flags() ---
	Limit int `mapstructure:"limit"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Series != nil {
		clone.Series = make([]float64, len(c.Series))
		copy(clone.Series, c.Series)
	}
	if c.Variables != nil {
		clone.Variables = make(map[string]string, len(c.Variables))
		for k, v := range c.Variables {
			clone.Variables[k] = v
		}
	}
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	// All validation functions read from 'input' and populate 'cfg'.
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processForecastInputs(cfg, input); err != nil {
		return err
	}
	if err := processCastInputs(cfg, input, time.Now()); err != nil {
		return err
	}
	if err := processOracleInputs(cfg, input); err != nil {
		return err
	}
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.JSONBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("history-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("history-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateSimpleInputs processes and validates the shared presentation and
// persistence fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width
	cfg.TemplatesDir = input.TemplatesDir
	if cfg.TemplatesDir == "" {
		cfg.TemplatesDir = GetTemplatesDirPath()
	}
	cfg.APIKey = input.APIKey
	cfg.BaseURL = input.BaseURL
	cfg.Model = input.Model
	cfg.Question = strings.TrimSpace(input.QuestionStr)
	cfg.Template = strings.TrimSpace(input.TemplateStr)

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. Precision and Output Validation ---
	if input.Precision < 0 || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between 0 and %d (received %d)", MaxPrecision, input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json", input.Output)
	}

	// --- 2. ResultLimit Validation ---
	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	// --- 3. Backend Validation ---
	cfg.HistoryBackend = schema.DatabaseBackend(strings.ToLower(input.HistoryBackend))
	if _, ok := schema.ValidDatabaseBackends[cfg.HistoryBackend]; !ok {
		return fmt.Errorf("invalid history backend '%s'. must be sqlite, mysql, postgresql, json, none", input.HistoryBackend)
	}
	cfg.HistoryDBConnect = input.HistoryDBConnect
	if err := ValidateDatabaseConnectionString(cfg.HistoryBackend, cfg.HistoryDBConnect); err != nil {
		return err
	}

	return nil
}

// processForecastInputs parses the data series and forecast parameters.
func processForecastInputs(cfg *Config, input *ConfigRawInput) error {
	if input.Data != "" {
		series, err := ParseSeries(input.Data)
		if err != nil {
			return err
		}
		cfg.Series = series
	}

	if input.Steps <= 0 || input.Steps > MaxSteps {
		return fmt.Errorf("steps must be between 1 and %d (received %d)", MaxSteps, input.Steps)
	}
	cfg.Steps = input.Steps

	cfg.Algorithm = schema.Algorithm(strings.ToLower(input.Algorithm))
	if _, ok := schema.ValidAlgorithms[cfg.Algorithm]; !ok {
		return fmt.Errorf("invalid algorithm '%s'. must be ensemble, ma, ema, linear, trend", input.Algorithm)
	}

	return nil
}

// processCastInputs validates the casting parameters. Unset date fields
// default to the given wall clock so that the time method always has a
// complete basis.
func processCastInputs(cfg *Config, input *ConfigRawInput, now time.Time) error {
	cfg.Method = schema.CastMethod(strings.ToLower(input.Method))
	if _, ok := schema.ValidCastMethods[cfg.Method]; !ok {
		return fmt.Errorf("invalid cast method '%s'. must be time, direction, random", input.Method)
	}

	cfg.Year = input.Year
	cfg.Month = input.Month
	cfg.Day = input.Day
	cfg.Hour = input.Hour
	if cfg.Year == 0 {
		cfg.Year = now.Year()
	}
	if cfg.Month == 0 {
		cfg.Month = int(now.Month())
	}
	if cfg.Day == 0 {
		cfg.Day = now.Day()
	}
	if cfg.Hour < 0 {
		cfg.Hour = now.Hour()
	}

	if cfg.Month < 1 || cfg.Month > 12 {
		return fmt.Errorf("month must be between 1 and 12 (received %d)", cfg.Month)
	}
	if cfg.Day < 1 || cfg.Day > 31 {
		return fmt.Errorf("day must be between 1 and 31 (received %d)", cfg.Day)
	}
	if cfg.Hour > 23 {
		return fmt.Errorf("hour must be between 0 and 23 (received %d)", cfg.Hour)
	}

	cfg.Direction = strings.TrimSpace(input.Direction)
	if cfg.Method == schema.DirectionMethod && cfg.Direction == "" {
		return fmt.Errorf("--direction is required when using the direction method")
	}

	if input.Seed != "" {
		seed, err := strconv.ParseInt(input.Seed, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid --seed value '%s': %w", input.Seed, err)
		}
		cfg.Seed = seed
		cfg.SeedSet = true
	}

	return nil
}

// processOracleInputs validates the template variables and repeat count.
func processOracleInputs(cfg *Config, input *ConfigRawInput) error {
	if input.Times < 1 || input.Times > MaxTimes {
		return fmt.Errorf("times must be between 1 and %d (received %d)", MaxTimes, input.Times)
	}
	cfg.Times = input.Times

	variables, err := ParseVariables(input.Variables)
	if err != nil {
		return err
	}
	cfg.Variables = variables

	return nil
}

// ParseSeries parses a comma-separated list of numbers into a series.
func ParseSeries(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	series := make([]float64, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed == "" {
			continue
		}
		v, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid data point '%s': %w", trimmed, err)
		}
		// ParseFloat accepts NaN and Inf, which the models cannot use.
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("invalid data point '%s': must be a finite number", trimmed)
		}
		series = append(series, v)
	}
	if len(series) < MinSeriesPoints {
		return nil, fmt.Errorf("data must contain at least %d points (received %d)", MinSeriesPoints, len(series))
	}
	return series, nil
}

// ParseVariables parses a JSON object of template variables. Empty input
// yields an empty map.
func ParseVariables(s string) (map[string]string, error) {
	variables := make(map[string]string)
	if strings.TrimSpace(s) == "" {
		return variables, nil
	}
	if err := json.Unmarshal([]byte(s), &variables); err != nil {
		return nil, fmt.Errorf("invalid --variables JSON: %w", err)
	}
	return variables, nil
}
