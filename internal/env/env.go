package env

import (
	"os"
	"strconv"
	"time"
)

func String(key, def string) string {
	val, ok := os.LookupEnv(key)
	if !ok {
		return def
	}

	return val
}

func Int(key string, def int) int {
	valStr, ok := os.LookupEnv(key)
	if !ok {
		return def
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return def
	}

	return val
}

func Bool(key string, def bool) bool {
	valStr, ok := os.LookupEnv(key)
	if !ok {
		return def
	}

	val, err := strconv.ParseBool(valStr)
	if err != nil {
		return def
	}

	return val
}

func Duration(key string, def time.Duration) time.Duration {
	valStr, ok := os.LookupEnv(key)
	if !ok {
		return def
	}

	val, err := time.ParseDuration(valStr)
	if err != nil {
		return def
	}

	return val
}
