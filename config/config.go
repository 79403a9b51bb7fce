package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"
)

//go:embed version
var version string

//go:embed name
var name string

type LogLevel string

const (
	Debug  LogLevel = "debug"
	Info   LogLevel = "info"
	Notice LogLevel = "notice"
	Warn   LogLevel = "warn"
	Error  LogLevel = "error"
)

func GetVersion() string {
	return strings.TrimSpace(version)
}

func GetName() string {
	return strings.TrimSpace(name)
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("STAFFDIR_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("STAFFDIR_DEBUG") == "true"
}

func GetDBFolderPath() string {
	dbFolderPath := os.Getenv("STAFFDIR_DB_FOLDER")
	if dbFolderPath == "" {
		dbFolderPath = "/etc/staffdir"
	}
	return dbFolderPath
}

func GetDBPath() string {
	return fmt.Sprintf("%s/%s.db", GetDBFolderPath(), GetName())
}

func GetLogFolder() string {
	logFolderPath := os.Getenv("STAFFDIR_LOG_FOLDER")
	if logFolderPath == "" {
		logFolderPath = "/var/log"
	}
	return logFolderPath
}

func GetListen() string {
	return os.Getenv("STAFFDIR_LISTEN")
}

func GetPort() int {
	port, err := strconv.Atoi(os.Getenv("STAFFDIR_PORT"))
	if err != nil || port <= 0 || port > 65535 {
		return 8080
	}
	return port
}

func GetBasePath() string {
	basePath := os.Getenv("STAFFDIR_BASE_PATH")
	if basePath == "" {
		return "/"
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	if !strings.HasSuffix(basePath, "/") {
		basePath += "/"
	}
	return basePath
}

func GetSessionSecret() string {
	return os.Getenv("STAFFDIR_SESSION_SECRET")
}

// GetSessionMaxAge returns the session cookie lifetime in minutes.
// Zero means a browser-session cookie.
func GetSessionMaxAge() int {
	maxAge, err := strconv.Atoi(os.Getenv("STAFFDIR_SESSION_MAX_AGE"))
	if err != nil || maxAge < 0 {
		return 60
	}
	return maxAge
}
