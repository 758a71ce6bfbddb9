package registry

import (
	"context"

	"github.com/JuinSoft/Celestium/lib/env"
)

const (
	// Version is the current version.
	Version string = "0.0.1"

	// EnvCfgHost is the env config key for the registry host.
	EnvCfgHost env.ConfigKey = "host"
	// EnvCfgPort is the env config key for the port on which the registry is
	// running.
	EnvCfgPort env.ConfigKey = "port"
)

// DefaultPort is the default port on which the registry runs for each
// environment.
var DefaultPort = map[env.Environment]string{
	env.Production: "2406",
	env.QA:         "2406",
}

// GetHost retrieves the current host from the context.
func GetHost(
	ctx context.Context,
) string {
	return env.Get(ctx).Config[EnvCfgHost]
}

// GetPort retrieves the current port from the context.
func GetPort(
	ctx context.Context,
) string {
	return env.Get(ctx).Config[EnvCfgPort]
}
