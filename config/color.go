package config

import "os"

// noColor follows https://no-color.org: any non-empty NO_COLOR disables colors.
func noColor() bool {
	return len(os.Getenv("NO_COLOR")) > 0
}
