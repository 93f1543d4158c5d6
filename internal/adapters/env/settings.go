package env

import (
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultHost = "localhost"
	DefaultPort = 5173
)

// Settings are process-level options read from the environment.
type Settings struct {
	Host    string
	Port    int
	Dev     bool
	Verbose bool
}

func (s Settings) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// Load reads a .env file from the working directory when present, then the
// MULTIPAGE_* variables.
func Load() Settings {
	_ = godotenv.Load()
	return FromEnv()
}

func FromEnv() Settings {
	s := Settings{
		Host:    DefaultHost,
		Port:    DefaultPort,
		Dev:     true,
		Verbose: os.Getenv("MULTIPAGE_VERBOSE") == "1",
	}

	if host := strings.TrimSpace(os.Getenv("MULTIPAGE_HOST")); host != "" {
		s.Host = host
	}
	if port, err := strconv.Atoi(strings.TrimSpace(os.Getenv("MULTIPAGE_PORT"))); err == nil && port > 0 {
		s.Port = port
	}
	if v := os.Getenv("MULTIPAGE_DEV"); v != "" {
		s.Dev = v == "1"
	}
	return s
}
