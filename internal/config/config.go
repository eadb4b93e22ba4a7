package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"quizprize-game/internal/models"
)

type Config struct {
	Port         string
	DatabaseURL  string
	CookieSecret string
	Settings     Settings
}

// Settings is the gameplay settings source: the per-question point value
// and per-category countdown overrides. Values resolve from an optional
// YAML file (SETTINGS_FILE) with built-in defaults underneath.
type Settings struct {
	PointsPerQuestion int            `yaml:"pointsPerQuestion"`
	PauseSeconds      int            `yaml:"pauseSeconds"`
	TimerSeconds      map[string]int `yaml:"timerSeconds"`
}

func Load() *Config {
	port := getEnv("PORT", "8080")
	databaseURL := getEnv("DATABASE_URL", "")

	settings := DefaultSettings()
	if path := getEnv("SETTINGS_FILE", ""); path != "" {
		loaded, err := LoadSettings(path)
		if err != nil {
			log.Printf("Failed to load settings file %s, using defaults: %v", path, err)
		} else {
			settings = loaded
		}
	}
	settings.PointsPerQuestion = getEnvAsInt("POINTS_PER_QUESTION", settings.PointsPerQuestion)

	return &Config{
		Port:         port,
		DatabaseURL:  databaseURL,
		CookieSecret: getEnv("COOKIE_SECRET", "quizprize-dev-secret"),
		Settings:     settings,
	}
}

func DefaultSettings() Settings {
	return Settings{
		PointsPerQuestion: 10,
		PauseSeconds:      3,
		TimerSeconds:      map[string]int{},
	}
}

// LoadSettings parses a YAML settings file, layering it over defaults.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, err
	}
	settings := DefaultSettings()
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Settings{}, err
	}
	if settings.TimerSeconds == nil {
		settings.TimerSeconds = map[string]int{}
	}
	return settings, nil
}

// TimerFor resolves the countdown for a category: a positive override
// from the settings file wins, otherwise the category default applies.
func (s Settings) TimerFor(c models.Category) int {
	if v, ok := s.TimerSeconds[string(c)]; ok && v > 0 {
		return v
	}
	return c.DefaultTimerSeconds()
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
