package awsh

// Version is overridden at build time with -ldflags "-X github.com/aretw0/awsh.Version=...".
var Version = "dev"
