package version

// Version may be overridden at build time via -ldflags.
var Version = "0.2.0"
