package main

import (
	"net"
	"os"
	"strconv"

	"github.com/edvnrs/wwwd"
	"github.com/edvnrs/wwwd/log"
)

func main() {
	host := getEnvOrDefault("WWWD_HOST", "localhost")
	port := getEnvAsIntOrDefault("WWWD_PORT", 8080)
	log.DebugMode = os.Getenv("WWWD_DEBUG") != ""

	addr := net.JoinHostPort(host, strconv.Itoa(port))

	err := wwwd.Run(addr, wwwd.Server{
		Root:         os.Getenv("WWWD_ROOT"),
		TemplatePath: os.Getenv("WWWD_ERROR_TEMPLATE"),
	})
	if err != nil {
		log.Error("server stopped:", err)
		os.Exit(1)
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		log.Warn("invalid", key, "value", value, "- using", defaultValue)
		return defaultValue
	}

	return n
}
