package config

import "os"

func BasePath() string {
	return os.Getenv("APP_BASE_PATH")
}

func Port() string {
	port, ok := os.LookupEnv("APP_PORT")
	if !ok {
		return ":8080"
	}
	return port
}

func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}
