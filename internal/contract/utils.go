package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/augur-cli/augur/schema"
)

// Trend strength label constants.
const (
	StrongValue   = "Strong"   // Strong trend
	ModerateValue = "Moderate" // Moderate trend
	WeakValue     = "Weak"     // Weak trend
)

// Color variables for console output.
var (
	StrongColor   = color.New(color.FgMagenta, color.Bold) // strongColor marks a pronounced trend.
	ModerateColor = color.New(color.FgYellow)              // moderateColor marks a developing trend.
	WeakColor     = color.New(color.FgCyan)                // weakColor marks a faint signal.

	AuspiciousColor   = color.New(color.FgGreen, color.Bold) // auspiciousColor marks a favorable reading.
	InauspiciousColor = color.New(color.FgRed, color.Bold)   // inauspiciousColor marks an unfavorable reading.
	BalancedColor     = color.New(color.FgYellow)            // balancedColor marks a neutral reading.
)

// GetPlainStrengthLabel returns a plain text label for trend strength.
// This is the core logic used for CSV, JSON, and table printing.
func GetPlainStrengthLabel(strength float64) string {
	switch {
	case strength >= 0.7:
		return StrongValue
	case strength >= 0.3:
		return ModerateValue
	default:
		return WeakValue
	}
}

// GetColorStrengthLabel returns a colored strength label for console output (table).
// It uses GetPlainStrengthLabel to determine the string, then applies the color.
func GetColorStrengthLabel(strength float64) string {
	text := GetPlainStrengthLabel(strength)

	switch text {
	case StrongValue:
		return StrongColor.Sprint(text)
	case ModerateValue:
		return ModerateColor.Sprint(text)
	default: // "Weak"
		return WeakColor.Sprint(text)
	}
}

// GetPlainTierLabel returns the display text for a verdict tier.
func GetPlainTierLabel(tier schema.Tier) string {
	switch tier {
	case schema.AuspiciousTier:
		return "Auspicious"
	case schema.InauspiciousTier:
		return "Inauspicious"
	default:
		return "Balanced"
	}
}

// GetColorTierLabel returns a colored tier label for console output (table).
func GetColorTierLabel(tier schema.Tier) string {
	text := GetPlainTierLabel(tier)

	switch tier {
	case schema.AuspiciousTier:
		return AuspiciousColor.Sprint(text)
	case schema.InauspiciousTier:
		return InauspiciousColor.Sprint(text)
	default:
		return BalancedColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the
// provided file path. It falls back to os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetHistoryDBFilePath returns the path to the SQLite DB file for history storage.
func GetHistoryDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".augur_history.db"
	}
	return filepath.Join(homeDir, ".augur_history.db")
}

// GetHistoryJSONDirPath returns the directory used by the JSON file backend.
func GetHistoryJSONDirPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".augur_history"
	}
	return filepath.Join(homeDir, ".augur", "history")
}

// GetTemplatesDirPath returns the default directory for prompt templates.
func GetTemplatesDirPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".augur_templates"
	}
	return filepath.Join(homeDir, ".augur", "templates")
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
