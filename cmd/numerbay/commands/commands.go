// Copyright 2026 The NumerBay Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete numerbay CLI command tree.
package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/numerbay/numerbay-go/cmd/numerbay/cli"
	"github.com/numerbay/numerbay-go/lib/version"
)

// Root builds and returns the complete numerbay CLI command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "numerbay",
		Description: `NumerBay marketplace client.

Authenticate against the marketplace, inspect purchases and sales,
upload prediction artifacts to buyers, and download purchased
artifacts (decrypting them when they were sealed to your key).`,
		Subcommands: []*cli.Command{
			loginCommand(),
			accountCommand(),
			ordersCommand(),
			salesCommand(),
			listingsCommand(),
			submitCommand(),
			downloadCommand(),
			keygenCommand(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(_ context.Context, args []string, _ *slog.Logger) error {
					fmt.Printf("numerbay %s\n", version.Full())
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Check your credentials and account",
				Command:     "numerbay login",
			},
			{
				Description: "Upload predictions to every active sale of a listing",
				Command:     "numerbay submit predictions.csv --product-full-name numerai-predictions-mymodel",
			},
			{
				Description: "Download your latest purchase, decrypting with your exported key",
				Command:     "numerbay download --product-id 4 --key-path numerbay.json",
			},
		},
	}
}
