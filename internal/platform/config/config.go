package config

import (
	"flag"
	"os"
	"strconv"
	"time"

	"TxVisualizer/internal/domain"

	"github.com/joho/godotenv"
)

var (
	portCmd       = flag.Int("port", 3000, "HTTP server port")
	eventsPortCmd = flag.Int("events-port", 0, "ZeroMQ event publisher port, 0 disables it")
)

type Config struct {
	ServerPort        int
	EventsPort        int
	LockTimeout       time.Duration
	SamePriorityDelay time.Duration
	HoldDelay         time.Duration
	AllowOverdraft    bool
	DefaultAmount     string
	LogLevel          string
	DeploymentMode    string
}

func LoadConfig() Config {
	godotenv.Load(".env")
	return Config{
		ServerPort:        portValue("HTTP_PORT", *portCmd, flagSet("port")),
		EventsPort:        portValue("EVENTS_PORT", *eventsPortCmd, flagSet("events-port")),
		LockTimeout:       durationEnv("LOCK_TIMEOUT", domain.DefaultLockTimeout),
		SamePriorityDelay: durationEnv("SAME_PRIORITY_DELAY", domain.DefaultSamePriorityDelay),
		HoldDelay:         durationEnv("LOCK_HOLD_DELAY", domain.DefaultHoldDelay),
		AllowOverdraft:    boolEnv("ALLOW_OVERDRAFT", true),
		DefaultAmount:     stringEnv("DEFAULT_AMOUNT", "100"),
		LogLevel:          stringEnv("LOG_LEVEL", "info"),
		DeploymentMode:    os.Getenv("DEPLOYMENT_MODE"),
	}
}

func (c Config) EngineConfig() domain.EngineConfig {
	return domain.EngineConfig{
		LockTimeout:       c.LockTimeout,
		SamePriorityDelay: c.SamePriorityDelay,
		HoldDelay:         c.HoldDelay,
		AllowOverdraft:    c.AllowOverdraft,
	}
}

func stringEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// portValue prefers a port given on the command line, then the environment,
// then the flag default.
func portValue(key string, flagValue int, explicit bool) int {
	if explicit {
		return flagValue
	}
	return intEnv(key, flagValue)
}

func flagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

func intEnv(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func boolEnv(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil || v < 0 {
		return fallback
	}
	return v
}
