// Copyright 2026 The NumerBay Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/numerbay/numerbay-go/cmd/numerbay/cli"
	"github.com/numerbay/numerbay-go/lib/keyfile"
	"github.com/numerbay/numerbay-go/lib/sealedbox"
)

func keygenCommand() *cli.Command {
	var outPath string
	var force bool

	return &cli.Command{
		Name:    "keygen",
		Summary: "Generate a buyer key pair",
		Description: `Generate a Curve25519 key pair and write it to a key file.

Register the printed public key with the marketplace so sellers can
seal artifacts to you; keep the key file private. The file is written
owner-read-only and never overwritten without --force.`,
		Usage: "numerbay keygen [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("keygen", pflag.ContinueOnError)
			flagSet.StringVar(&outPath, "out", "numerbay.json", "key file destination")
			flagSet.BoolVar(&force, "force", false, "overwrite an existing key file")
			return flagSet
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if !force {
				if _, err := os.Stat(outPath); err == nil {
					return fmt.Errorf("%s already exists; pass --force to overwrite it (this discards the old private key)", outPath)
				}
			}

			keyPair, err := sealedbox.GenerateKeyPair()
			if err != nil {
				return err
			}
			if err := keyfile.Save(outPath, keyPair); err != nil {
				return err
			}

			logger.Info("wrote key file", "path", outPath)
			fmt.Printf("public key: %s\n", keyPair.PublicKey)
			return nil
		},
	}
}
