package version

// Version is the stopwatch version. Release builds set it with
// -ldflags "-X github.com/cloudposse/stopwatch/pkg/version.Version=<v>".
var Version = "0.0.0-dev"
