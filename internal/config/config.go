// Package config loads configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/easeaico/project-texas/internal/mood"
)

// Config holds runtime settings.
type Config struct {
	DatabaseURL  string
	CharacterKey string
	// StateBackend picks the persistence shape: "table" stores one row per
	// character, "kv" stores the record as a JSON document in state_kv.
	StateBackend string

	MoodMin          float64
	MoodMax          float64
	DeadZone         float64
	DominanceCap     float64
	ReleaseClamp     float64
	PostReleaseLust  float64
	MindBreakLust    float64
	PainCurve        string
	RefractoryWindow time.Duration
	AfterglowWindow  time.Duration
	NormalWindow     time.Duration
	AccumWindow      time.Duration
}

// Load reads env vars and applies defaults. Validation happens in
// MoodParams so invalid values surface as ConfigError at startup.
func Load() Config {
	defaults := mood.DefaultParams()

	cfg := Config{
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		CharacterKey: os.Getenv("CHARACTER_KEY"),
		StateBackend: os.Getenv("STATE_BACKEND"),

		MoodMin:          getEnvFloat("MOOD_MIN", defaults.MoodMin),
		MoodMax:          getEnvFloat("MOOD_MAX", defaults.MoodMax),
		DeadZone:         getEnvFloat("DEAD_ZONE", defaults.DeadZone),
		DominanceCap:     getEnvFloat("DOMINANCE_CAP", defaults.DominanceCap),
		ReleaseClamp:     getEnvFloat("RELEASE_CLAMP", defaults.ReleaseClamp),
		PostReleaseLust:  getEnvFloat("POST_RELEASE_LUST", defaults.PostReleaseLust),
		MindBreakLust:    getEnvFloat("MIND_BREAK_LUST", defaults.MindBreakLust),
		PainCurve:        os.Getenv("PAIN_CURVE"),
		RefractoryWindow: getEnvDuration("REFRACTORY_WINDOW", defaults.RefractoryWindow),
		AfterglowWindow:  getEnvDuration("AFTERGLOW_WINDOW", defaults.AfterglowWindow),
		NormalWindow:     getEnvDuration("NORMAL_WINDOW", defaults.NormalWindow),
		AccumWindow:      getEnvDuration("ACCUMULATING_WINDOW", defaults.AccumulatingWindow),
	}

	if cfg.CharacterKey == "" {
		cfg.CharacterKey = "texas"
	}
	if cfg.StateBackend == "" {
		cfg.StateBackend = "table"
	}

	return cfg
}

// MoodParams builds the validated parameter set for the state machine.
func (c Config) MoodParams() (mood.Params, error) {
	params := mood.DefaultParams()
	params.MoodMin = c.MoodMin
	params.MoodMax = c.MoodMax
	params.DeadZone = c.DeadZone
	params.DominanceCap = c.DominanceCap
	params.ReleaseClamp = c.ReleaseClamp
	params.PostReleaseLust = c.PostReleaseLust
	params.MindBreakLust = c.MindBreakLust
	params.RefractoryWindow = c.RefractoryWindow
	params.AfterglowWindow = c.AfterglowWindow
	params.NormalWindow = c.NormalWindow
	params.AccumulatingWindow = c.AccumWindow

	if c.PainCurve != "" {
		curve, err := parsePainCurve(c.PainCurve)
		if err != nil {
			return mood.Params{}, err
		}
		params.PainCurve = curve
	}

	if err := params.Validate(); err != nil {
		return mood.Params{}, err
	}
	return params, nil
}

// parsePainCurve parses "1:0.8,2:0.6" into a day-to-level map.
func parsePainCurve(raw string) (map[int]float64, error) {
	curve := make(map[int]float64)
	for _, pair := range strings.Split(raw, ",") {
		parts := strings.SplitN(strings.TrimSpace(pair), ":", 2)
		if len(parts) != 2 {
			return nil, &mood.ConfigError{Field: "PAIN_CURVE", Reason: fmt.Sprintf("malformed entry %q", pair)}
		}
		day, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, &mood.ConfigError{Field: "PAIN_CURVE", Reason: fmt.Sprintf("invalid day %q", parts[0])}
		}
		level, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, &mood.ConfigError{Field: "PAIN_CURVE", Reason: fmt.Sprintf("invalid level %q", parts[1])}
		}
		curve[day] = level
	}
	return curve, nil
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseFloat(val, 64); err == nil {
			return parsed
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}
