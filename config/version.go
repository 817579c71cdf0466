package config

var (
	Version    string = "dev"
	CommitHash string = ""
)

// IsProduction reports a release build with a known commit.
func IsProduction() bool {
	return Version == "release" && CommitHash != ""
}

// IsDevelopment reports a dev build.
func IsDevelopment() bool {
	return Version == "dev"
}
