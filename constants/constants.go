package constants

import "os"

func GetPort() string {
	port := os.Getenv("PORT")
	if port != "" {
		return port
	}
	return "8080"
}

// DefaultNotationStyle is the style every built-in system defines.
const DefaultNotationStyle = "full"
