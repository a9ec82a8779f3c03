package config

import "os"

// Development reports whether the DEVELOPMENT env variable asks for
// development behaviour regardless of the configured mode.
func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}
