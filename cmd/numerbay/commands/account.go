// Copyright 2026 The NumerBay Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/numerbay/numerbay-go/cmd/numerbay/cli"
	"github.com/numerbay/numerbay-go/lib/api"
)

func accountCommand() *cli.Command {
	var session sessionFlags

	return &cli.Command{
		Name:    "account",
		Summary: "Print the authenticated account",
		Description: `Print the authenticated account as JSON, including linked
Numerai models and their public keys.`,
		Usage: "numerbay account [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("account", pflag.ContinueOnError)
			session.register(flagSet)
			return flagSet
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			client, _, err := session.connect(ctx, logger)
			if err != nil {
				return err
			}
			account, err := client.Account(ctx)
			if err != nil {
				return err
			}
			return cli.WriteJSON(account)
		},
	}
}

func ordersCommand() *cli.Command {
	return orderListCommand("orders", "Print your purchases", api.RoleBuyer)
}

func salesCommand() *cli.Command {
	return orderListCommand("sales", "Print your sales", api.RoleSeller)
}

func orderListCommand(name, summary string, role api.OrderRole) *cli.Command {
	var session sessionFlags

	return &cli.Command{
		Name:    name,
		Summary: summary,
		Usage:   "numerbay " + name + " [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet(name, pflag.ContinueOnError)
			session.register(flagSet)
			return flagSet
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			client, _, err := session.connect(ctx, logger)
			if err != nil {
				return err
			}
			orders, err := client.SearchOrders(ctx, role)
			if err != nil {
				return err
			}
			return cli.WriteJSON(orders)
		},
	}
}

func listingsCommand() *cli.Command {
	var session sessionFlags

	return &cli.Command{
		Name:    "listings",
		Summary: "Print your own product listings",
		Usage:   "numerbay listings [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("listings", pflag.ContinueOnError)
			session.register(flagSet)
			return flagSet
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			client, _, err := session.connect(ctx, logger)
			if err != nil {
				return err
			}
			account, err := client.Account(ctx)
			if err != nil {
				return err
			}
			products, err := client.SearchProducts(ctx, api.ProductSearch{OwnerID: account.ID})
			if err != nil {
				return err
			}
			return cli.WriteJSON(products)
		},
	}
}
