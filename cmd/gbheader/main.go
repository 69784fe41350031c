package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/thelolagemann/gbheader/internal/cartridge"
	"github.com/thelolagemann/gbheader/pkg/log"
	"github.com/thelolagemann/gbheader/pkg/utils"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run checks the ROM named in args and returns the exit status: 0 when the
// header is valid, 1 when it isn't or can't be read, 2 on bad usage.
func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("gbheader", flag.ContinueOnError)
	fs.SetOutput(stderr)
	all := fs.Bool("all", false, "Report every failing header check instead of only the first")
	verbose := fs.Bool("v", false, "Enable debug logging")
	quiet := fs.Bool("quiet", false, "Only set the exit status")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: gbheader [flags] <rom>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}
	path := fs.Arg(0)

	logger := log.New(stderr, *verbose)
	if *quiet {
		logger = log.NewNullLogger()
	}

	if *all && !diagnose(path, logger) {
		return 1
	}

	cart, err := cartridge.Load(path, utils.WithLogger(logger))
	if err != nil {
		logger.Errorf("%s: %s", path, err)
		return 1
	}

	h := cart.Header()
	logger.Infof("%s", h.String())
	logger.Infof("Licensee: %s | Version: %d | Banks: %d ROM, %d RAM",
		h.Licensee(), h.MaskROMVersion, cartridge.ROMBanks(h.ROMSize), cartridge.RAMBanks(h.RAMSize))
	logger.Infof("Digest: %016x", cart.Digest())
	if !cart.SizeMatches() {
		logger.Infof("image is %d bytes, header declares %d", cart.Len(), h.ROMSize)
	}
	if rom := cart.Bytes(); !h.GlobalChecksumOK(rom) {
		logger.Debugf("global checksum 0x%04X does not match 0x%04X", h.GlobalChecksum, cartridge.GlobalChecksum(rom))
	}
	return 0
}

// diagnose logs every failing header check and reports whether there were none.
func diagnose(path string, logger log.Logger) bool {
	rom, err := utils.LoadFile(path, utils.WithLogger(logger))
	if err != nil {
		logger.Errorf("unable to read %s: %s", path, err)
		return false
	}

	if err := cartridge.Diagnose(rom); err != nil {
		var merr *multierror.Error
		if errors.As(err, &merr) {
			for _, e := range merr.Errors {
				logger.Errorf("%s: %s", path, e)
			}
		}
		return false
	}
	return true
}
