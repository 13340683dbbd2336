package main

import (
	"strconv"

	"github.com/rusq/osenv/v2"
)

// DefaultPort is used when PORT is missing or not a usable TCP port.
const DefaultPort = 8080

type Config struct {
	Port int
}

func LoadConfig() Config {
	port, ok := parsePort(osenv.Value("PORT", ""))
	if !ok {
		port = DefaultPort
	}

	return Config{
		Port: port,
	}
}

func parsePort(s string) (int, bool) {
	p, err := strconv.Atoi(s)
	if err != nil || p < 1 || p > 65535 {
		return 0, false
	}
	return p, true
}
