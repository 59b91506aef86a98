// Copyright 2026 The NumerBay Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/numerbay/numerbay-go/cmd/numerbay/cli"
	"github.com/numerbay/numerbay-go/lib/api"
	"github.com/numerbay/numerbay-go/lib/config"
)

func loginCommand() *cli.Command {
	var session sessionFlags

	return &cli.Command{
		Name:    "login",
		Summary: "Verify marketplace credentials",
		Description: `Verify credentials against the marketplace and print the account.

Credentials come from the config file or the environment; missing
values are prompted for interactively (the password without echo).
Nothing is persisted: put working credentials in ` + config.EnvUsername + ` /
` + config.EnvPassword + ` or a config file for the other commands.`,
		Usage: "numerbay login [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("login", pflag.ContinueOnError)
			session.register(flagSet)
			return flagSet
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			configuration, err := config.Load(session.configPath)
			if err != nil {
				return err
			}

			username := configuration.Username
			if username == "" {
				username, err = promptLine("Username: ")
				if err != nil {
					return err
				}
			}
			password := configuration.Password
			if password == "" {
				password, err = promptPassword("Password: ")
				if err != nil {
					return err
				}
			}

			client, err := api.NewClient(api.Config{
				BaseURL: configuration.BaseURL,
				Timeout: time.Duration(configuration.Timeout),
				Logger:  logger,
			})
			if err != nil {
				return err
			}
			if err := client.Login(ctx, username, password); err != nil {
				return err
			}
			account, err := client.Account(ctx)
			if err != nil {
				return err
			}

			fmt.Printf("logged in as %s (user %d)\n", account.Username, account.ID)
			return nil
		},
	}
}

// promptLine reads one line from stdin.
func promptLine(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// promptPassword reads a password from the terminal without echo.
func promptPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	defer fmt.Fprintln(os.Stderr)

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		// Piped stdin (tests, scripts): fall back to a plain line read.
		return promptLine("")
	}
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return string(password), nil
}
