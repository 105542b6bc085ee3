package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/Amr-9/CKBHunter/internal/ui"
	"github.com/Amr-9/CKBHunter/pkg/generator"
	"github.com/Amr-9/CKBHunter/pkg/generator/ckb"
	"github.com/Amr-9/CKBHunter/pkg/generator/cpu"
)

const version = "0.1"

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newApp builds the command line application writing to out and errOut.
func newApp(out, errOut io.Writer) *cli.App {
	console := ui.NewConsole(out, errOut)

	return &cli.App{
		Name:      "ckbhunter",
		Usage:     "find a CKB short address starting with a chosen prefix (flags go before the prefix)",
		ArgsUsage: "[--workers N] [--nice] <prefix>",
		Version:   version,
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "workers",
				Aliases: []string{"w"},
				Usage:   "number of search workers",
				Value:   cpu.DefaultWorkers(),
			},
			&cli.BoolFlag{
				Name:  "nice",
				Usage: "lower process priority while searching",
			},
		},
		Action: func(c *cli.Context) error {
			return runSearch(c, console)
		},
		Commands: []*cli.Command{
			{
				Name:      "derive",
				Usage:     "print the address owned by a private key",
				ArgsUsage: "<private key hex>",
				Action: func(c *cli.Context) error {
					return runDerive(c, console)
				},
			},
		},
	}
}

// runSearch validates the prefix argument and blocks until a match is found.
func runSearch(c *cli.Context, console *ui.Console) error {
	if c.NArg() < 1 {
		console.PrintUsage(c.App.Name)
		return nil
	}

	prefix, err := ckb.ValidatePrefix(c.Args().First())
	if err != nil {
		console.PrintError(err)
		return nil
	}

	if c.Bool("nice") {
		if err := lowerPriority(); err != nil {
			console.PrintError(fmt.Errorf("lower priority: %w", err))
		}
	}

	gen := cpu.NewCPUGenerator(c.Int("workers"))
	gen.SetReporter(console)
	console.PrintSearchInfo(prefix, gen.Workers(), ckb.ExpectedAttempts(prefix))

	// No cancellation: the search ends on a match or when the process is killed.
	_, err = gen.Search(context.Background(), &generator.Config{Prefix: prefix})
	return err
}

// runDerive prints the address for a private key given on the command line.
func runDerive(c *cli.Context, console *ui.Console) error {
	if c.NArg() < 1 {
		return errors.New("missing private key argument")
	}

	privKey, err := ckb.ParsePrivateKey(c.Args().First())
	if err != nil {
		return fmt.Errorf("derive: %w", err)
	}

	console.PrintAddress(ckb.PrivateKeyToHex(privKey), ckb.AddressFromPrivateKey(privKey))
	return nil
}
