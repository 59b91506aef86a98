// Copyright 2026 The NumerBay Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/numerbay/numerbay-go/cmd/numerbay/cli"
	"github.com/numerbay/numerbay-go/lib/artifact"
)

func submitCommand() *cli.Command {
	var session sessionFlags
	var productID int64
	var productFullName string
	var orderID int64

	return &cli.Command{
		Name:    "submit",
		Summary: "Upload an artifact to a listing's buyers",
		Description: `Upload a file to one of your listings.

For a listing with client-side encryption, one copy is uploaded per
confirmed sale: sales carrying a submit model get a direct Numerai
submission, file-mode sales with a buyer key get a copy sealed to that
key, and sales without a key yet share a single unencrypted upload.
Listings without encryption get exactly one artifact.`,
		Usage: "numerbay submit <path> [flags]",
		Examples: []cli.Example{
			{
				Description: "Upload by product full name (category slug + model name)",
				Command:     "numerbay submit predictions.csv --product-full-name numerai-predictions-mymodel",
			},
			{
				Description: "Re-deliver to a single sale",
				Command:     "numerbay submit predictions.csv --product-id 4 --order-id 127",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("submit", pflag.ContinueOnError)
			session.register(flagSet)
			flagSet.Int64Var(&productID, "product-id", 0, "numeric product ID")
			flagSet.StringVar(&productFullName, "product-full-name", "", "product full name, e.g. numerai-predictions-mymodel")
			flagSet.Int64Var(&orderID, "order-id", 0, "deliver only to this sale")
			return flagSet
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) != 1 {
				return fmt.Errorf("submit takes exactly one file path argument")
			}
			if productID == 0 && productFullName == "" {
				return fmt.Errorf("one of --product-id or --product-full-name is required")
			}

			client, configuration, err := session.connect(ctx, logger)
			if err != nil {
				return err
			}
			engine := artifact.NewEngine(client,
				artifact.WithLogger(logger),
				artifact.WithProgress(configuration.ShowProgress),
			)

			result, err := engine.Upload(ctx, artifact.FileSource(args[0]), artifact.Reference{
				ProductID:       productID,
				ProductFullName: productFullName,
				OrderID:         orderID,
			})
			if err != nil {
				return err
			}

			if result.Single != nil {
				return cli.WriteJSON(result.Single)
			}
			return cli.WriteJSON(result.PerSale)
		},
	}
}
