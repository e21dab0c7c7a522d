package version

// Version is the build version, overridden with -ldflags "-X github.com/netxfw/eventlog/internal/version.Version=...".
// Version 是构建版本，可通过 -ldflags 覆盖。
var Version = "dev"
