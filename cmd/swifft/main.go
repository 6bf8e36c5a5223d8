// Command swifft hashes 256-byte blocks of a file with the SWIFFT
// compression function and prints one hash per block. Blocks are
// independent; this is not a streaming hash of the whole file.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/urfave/cli"

	"github.com/SnellerInc/swifft"
)

func main() {
	app := cli.NewApp()
	app.Name = "swifft"
	app.Usage = "hash 256-byte blocks with the SWIFFT compression function"
	app.UsageText = "swifft [options] [file]"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "compact,c",
			Usage: "print the 64-byte compact digest instead of the hash value",
		},
		cli.StringFlag{
			Name:  "sign,s",
			Usage: "read sign blocks from `FILE` (same length as the input)",
		},
		cli.StringFlag{
			Name:  "backend,b",
			Usage: "force a specific `BACKEND` (scalar, avx2, avx512)",
		},
	}
	app.Action = run
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	backend := swifft.Default()
	if name := c.String("backend"); name != "" {
		backend = nil
		for _, b := range swifft.Backends() {
			if b.Name() == name {
				backend = b
				break
			}
		}
		if backend == nil {
			return fmt.Errorf("unknown backend %q", name)
		}
	}

	in := io.Reader(os.Stdin)
	if name := c.Args().First(); name != "" && name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	var sign io.Reader
	if name := c.String("sign"); name != "" {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		sign = f
	}

	var input, sgn swifft.Input
	var out swifft.Output
	for blk := 0; ; blk++ {
		n, err := readBlock(in, &input)
		if n == 0 {
			if err == io.EOF {
				return nil
			}
			return err
		}
		if sign != nil {
			// the sign file tracks the input block-for-block,
			// padded the same way
			if _, serr := readBlock(sign, &sgn); serr != nil && serr != io.EOF {
				return serr
			}
			backend.ComputeSigned(&input, &sgn, &out)
		} else {
			backend.Compute(&input, &out)
		}
		if c.Bool("compact") {
			d := out.Compact()
			fmt.Printf("%d: %x\n", blk, d[:])
		} else {
			b := out.Bytes()
			fmt.Printf("%d: %x\n", blk, b[:])
		}
		if err == io.EOF {
			return nil
		}
	}
}

// readBlock fills dst from r, zero-padding a short tail. It returns the
// number of input bytes consumed.
func readBlock(r io.Reader, dst *swifft.Input) (int, error) {
	n, err := io.ReadFull(r, dst[:])
	if err == io.ErrUnexpectedEOF {
		err = io.EOF
	}
	for i := n; i < len(dst); i++ {
		dst[i] = 0
	}
	return n, err
}
