// Copyright 2026 The NumerBay Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/pflag"

	"github.com/numerbay/numerbay-go/lib/api"
	"github.com/numerbay/numerbay-go/lib/config"
)

// sessionFlags is the configuration shared by every command that talks
// to the backend. Each command's flag set embeds it via register.
type sessionFlags struct {
	configPath string
}

func (flags *sessionFlags) register(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&flags.configPath, "config", "",
		"path to a YAML config file (default $"+config.EnvConfig+")")
}

// connect loads configuration and returns an authenticated client.
// Credentials come from the config file or the NUMERBAY_USERNAME /
// NUMERBAY_PASSWORD environment variables.
func (flags *sessionFlags) connect(ctx context.Context, logger *slog.Logger) (*api.Client, *config.Config, error) {
	configuration, err := config.Load(flags.configPath)
	if err != nil {
		return nil, nil, err
	}

	client, err := api.NewClient(api.Config{
		BaseURL: configuration.BaseURL,
		Timeout: time.Duration(configuration.Timeout),
		Logger:  logger,
	})
	if err != nil {
		return nil, nil, err
	}

	if configuration.Username == "" || configuration.Password == "" {
		return nil, nil, fmt.Errorf(
			"no credentials: set %s and %s, or put username/password in a config file (see 'numerbay login --help')",
			config.EnvUsername, config.EnvPassword)
	}
	if err := client.Login(ctx, configuration.Username, configuration.Password); err != nil {
		return nil, nil, err
	}
	return client, configuration, nil
}
