// Package misc keeps build time information.
package misc

// set with -ldflags "-X webcheck/misc.version=... -X webcheck/misc.gitHash=..."
var (
	version = "dev"
	gitHash = "unknown"
)

const appName = "webcheck"

func GetVersion() string {
	return version
}

func GetGitHash() string {
	return gitHash
}

func GetAppName() string {
	return appName
}
