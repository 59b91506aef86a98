// Copyright 2026 The NumerBay Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/numerbay/numerbay-go/cmd/numerbay/cli"
	"github.com/numerbay/numerbay-go/lib/api"
	"github.com/numerbay/numerbay-go/lib/artifact"
	"github.com/numerbay/numerbay-go/lib/keyfile"
)

func downloadCommand() *cli.Command {
	var session sessionFlags
	var productID int64
	var productFullName string
	var orderID int64
	var artifactID string
	var keyPath string
	var keyBase64 string
	var destPath string

	return &cli.Command{
		Name:    "download",
		Summary: "Download a purchased artifact",
		Description: `Download an artifact from a product you have an active order for.

Artifacts sealed to your key are decrypted in place after the bytes
land; the private key comes from --key-base64, --key-path, the key_path
config entry, or $` + keyfile.EnvPath + `. Interrupted downloads resume
from the partial file with ranged requests.`,
		Usage: "numerbay download [flags]",
		Examples: []cli.Example{
			{
				Description: "Download the latest active artifact of a purchase",
				Command:     "numerbay download --product-full-name numerai-predictions-mymodel",
			},
			{
				Description: "Pick a specific artifact and destination",
				Command:     "numerbay download --product-id 4 --artifact-id 3 --dest-path out/predictions.csv",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("download", pflag.ContinueOnError)
			session.register(flagSet)
			flagSet.Int64Var(&productID, "product-id", 0, "numeric product ID")
			flagSet.StringVar(&productFullName, "product-full-name", "", "product full name, e.g. numerai-predictions-mymodel")
			flagSet.Int64Var(&orderID, "order-id", 0, "restrict to this order")
			flagSet.StringVar(&artifactID, "artifact-id", "", "explicit artifact ID (numeric or encrypted)")
			flagSet.StringVar(&keyPath, "key-path", "", "path to an exported key file")
			flagSet.StringVar(&keyBase64, "key-base64", "", "base64 private key (overrides --key-path)")
			flagSet.StringVar(&destPath, "dest-path", "", "destination file (default: the artifact's object name)")
			return flagSet
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) != 0 {
				return fmt.Errorf("download takes no positional arguments")
			}

			client, configuration, err := session.connect(ctx, logger)
			if err != nil {
				return err
			}
			engine := artifact.NewEngine(client,
				artifact.WithLogger(logger),
				artifact.WithProgress(configuration.ShowProgress),
			)

			privateKey := keyBase64
			if privateKey == "" {
				path := keyPath
				if path == "" {
					path = configuration.KeyPath
				}
				if path == "" {
					path = keyfile.DefaultPath()
				}
				if path != "" {
					keyPair, err := keyfile.Load(path)
					switch {
					case err == nil:
						privateKey = keyPair.PrivateKey
					case keyPath == "" && errors.Is(err, fs.ErrNotExist):
						// An implicit key path that does not exist is
						// fine for plain artifacts.
					default:
						return err
					}
				}
			}

			return engine.Download(ctx, destPath, artifact.Reference{
				ProductID:       productID,
				ProductFullName: productFullName,
				OrderID:         orderID,
				ArtifactID:      parseArtifactID(artifactID),
			}, privateKey)
		},
	}
}

// parseArtifactID maps a flag value to the artifact ID variant: decimal
// digits mean a numeric (plain) artifact, anything else is an encrypted
// per-order artifact ID.
func parseArtifactID(value string) api.ArtifactID {
	if value == "" {
		return api.ArtifactID{}
	}
	if numeric, err := strconv.ParseInt(value, 10, 64); err == nil {
		return api.NumericArtifactID(numeric)
	}
	return api.EncryptedArtifactID(value)
}
