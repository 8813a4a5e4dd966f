package version

// AppVersion is overridden at build time with
// -ldflags "-X envscope/internal/version.AppVersion=...".
var AppVersion = "dev"
