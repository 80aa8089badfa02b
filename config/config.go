package config

import "os"

// Config holds the process configuration, read from the environment with
// local-friendly defaults.
type Config struct {
	Port         string
	StorePath    string
	GeminiAPIKey string
	// ReportCron is the schedule for the logged end-of-day report.
	ReportCron string
}

func Load() Config {
	return Config{
		Port:         getenv("PORT", "8080"),
		StorePath:    getenv("STORE_PATH", "juluka.db"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		ReportCron:   getenv("REPORT_CRON", "0 18 * * *"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
