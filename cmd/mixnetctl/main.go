// Command mixnetctl inspects mixnet payloads and states and runs ballot
// boxes through a local chain of mixing nodes.
package main

import (
	"fmt"
	"os"

	"github.com/gookit/color"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

var Version = "dev"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Println()
		color.Printf("<error>ERROR</>\t%s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "mixnetctl",
		Usage:   "inspect, sign-check and simulate mixnet ballot boxes",
		Version: Version,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "log every hop"},
		},
		Commands: []*cli.Command{
			{
				Name:      "inspect",
				Usage:     "decode a payload or state and describe it",
				ArgsUsage: "FILE",
				Action: func(c *cli.Context) error {
					data, err := readArg(c)
					if err != nil {
						return err
					}
					return inspect(c.App.Writer, data)
				},
			},
			{
				Name:      "canonicalize",
				Usage:     "re-encode a payload or state as canonical JSON",
				ArgsUsage: "FILE",
				Action: func(c *cli.Context) error {
					data, err := readArg(c)
					if err != nil {
						return err
					}
					return canonicalize(c.App.Writer, data)
				},
			},
			{
				Name:      "fingerprint",
				Usage:     "print the fingerprint of a payload's canonical encoding",
				ArgsUsage: "FILE",
				Action: func(c *cli.Context) error {
					data, err := readArg(c)
					if err != nil {
						return err
					}
					return fingerprint(c.App.Writer, data)
				},
			},
			{
				Name:      "verify-signature",
				Usage:     "check a signed payload against a trusted public key",
				ArgsUsage: "FILE",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{Name: "pubkey", Usage: "trusted compressed secp256k1 key (hex)", Required: true},
				},
				Action: func(c *cli.Context) error {
					data, err := readArg(c)
					if err != nil {
						return err
					}
					return verifySignature(c.App.Writer, data, c.StringSlice("pubkey"))
				},
			},
			{
				Name:  "simulate",
				Usage: "mix single vote ballot boxes through local nodes",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "config", Usage: "yaml configuration file"},
					&cli.IntFlag{Name: "boxes", Value: 10, Usage: "number of ballot boxes"},
					&cli.StringFlag{Name: "p", Value: defaultP, Usage: "group modulus (hex)"},
					&cli.StringFlag{Name: "q", Value: defaultQ, Usage: "group order (hex)"},
					&cli.StringFlag{Name: "g", Value: defaultG, Usage: "group generator (hex)"},
				},
				Action: func(c *cli.Context) error {
					return simulate(c.Context, c.App.Writer, simulateParams{
						ConfigPath: c.String("config"),
						Boxes:      c.Int("boxes"),
						P:          c.String("p"),
						Q:          c.String("q"),
						G:          c.String("g"),
						Logger:     newLogger(c.Bool("verbose")),
						Progress:   true,
					})
				},
			},
		},
	}
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

func readArg(c *cli.Context) ([]byte, error) {
	if c.NArg() != 1 {
		return nil, cli.Exit(fmt.Sprintf("%s expects exactly one FILE argument", c.Command.Name), 2)
	}
	return os.ReadFile(c.Args().First())
}
