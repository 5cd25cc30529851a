package config

import "os"

func IsDebug() bool {
	return os.Getenv("ELEX_DEBUG") == "1"
}
