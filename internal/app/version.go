package app

// Version is the build version, set with -ldflags "-X .../internal/app.Version=v1.2.3".
var Version = "dev"
