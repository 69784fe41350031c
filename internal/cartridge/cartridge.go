// Package cartridge validates the header of a Game Boy cartridge image.
// A ROM is only accepted when its logo, cartridge type, ROM and RAM sizes,
// and header checksum all hold up; the first failing check is returned.
package cartridge

import (
	"github.com/hashicorp/go-multierror"
)

// check is one stage of the validation pipeline.
type check func(rom []byte) error

// Validate runs every header check in order, stopping at the first failure.
func Validate(rom []byte) error {
	for _, c := range pipeline() {
		if err := c(rom); err != nil {
			return err
		}
	}
	return nil
}

// Diagnose runs every header check that can run and reports all failures in
// pipeline order. It returns nil exactly when Validate does.
func Diagnose(rom []byte) error {
	var result *multierror.Error
	for _, c := range pipeline() {
		if err := c(rom); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

func pipeline() []check {
	var (
		bank            MemoryBankType
		ram             uint
		bankErr, ramErr error
	)
	return []check{
		VerifyLogo,
		func(rom []byte) error {
			bank, bankErr = decodeAt(rom, offsetCartridgeType, DecodeBankType)
			return bankErr
		},
		func(rom []byte) error {
			_, err := decodeAt(rom, offsetROMSize, DecodeROMSize)
			return err
		},
		func(rom []byte) error {
			ram, ramErr = decodeAt(rom, offsetRAMSize, DecodeRAMSize)
			return ramErr
		},
		func([]byte) error {
			// consistency has nothing to compare until both decodes succeed
			if bankErr != nil || ramErr != nil {
				return nil
			}
			return CheckConsistency(bank, ram)
		},
		VerifyHeaderChecksum,
	}
}

// decodeAt bounds checks offset before handing its byte to decode.
func decodeAt[T any](rom []byte, offset int, decode func(uint8) (T, error)) (T, error) {
	if len(rom) <= offset {
		var zero T
		return zero, truncated(offset+1, len(rom))
	}
	return decode(rom[offset])
}
