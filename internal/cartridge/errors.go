package cartridge

import (
	"errors"
	"fmt"
)

// Kind identifies which header check failed.
type Kind uint8

const (
	KindTruncated Kind = iota
	KindLogoMismatch
	KindInvalidCartridgeType
	KindInvalidROMSize
	KindInvalidRAMSize
	KindMBC2RAMMismatch
	KindChecksumMismatch
)

var (
	ErrHeader = errors.New("invalid header")

	ErrTruncated            = errors.New("header truncated")
	ErrLogoMismatch         = errors.New("logo mismatch")
	ErrInvalidCartridgeType = errors.New("invalid cartridge type")
	ErrInvalidROMSize       = errors.New("invalid ROM size")
	ErrInvalidRAMSize       = errors.New("invalid RAM size")
	ErrMBC2RAMMismatch      = errors.New("MBC2 declares external RAM")
	ErrChecksumMismatch     = errors.New("header checksum mismatch")
)

var sentinels = [...]error{
	KindTruncated:            ErrTruncated,
	KindLogoMismatch:         ErrLogoMismatch,
	KindInvalidCartridgeType: ErrInvalidCartridgeType,
	KindInvalidROMSize:       ErrInvalidROMSize,
	KindInvalidRAMSize:       ErrInvalidRAMSize,
	KindMBC2RAMMismatch:      ErrMBC2RAMMismatch,
	KindChecksumMismatch:     ErrChecksumMismatch,
}

// HeaderError is returned by every header check. Only the fields relevant
// to Kind are set.
type HeaderError struct {
	Kind Kind

	// Code is the offending byte for the invalid code kinds.
	Code uint8

	// RAMSize is the decoded RAM size for KindMBC2RAMMismatch.
	RAMSize uint

	// Expected is the stored checksum at 0x014D, Actual the recomputed one.
	Expected uint8
	Actual   uint8

	// Offset is the exclusive end the check needed and Length what it got,
	// for KindTruncated.
	Offset int
	Length int
}

func (e *HeaderError) Error() string {
	if !e.Kind.valid() {
		return fmt.Sprintf("%s: unknown kind %d", ErrHeader, e.Kind)
	}
	switch e.Kind {
	case KindTruncated:
		return fmt.Sprintf("%s: need %d bytes, got %d", ErrTruncated, e.Offset, e.Length)
	case KindInvalidCartridgeType, KindInvalidROMSize, KindInvalidRAMSize:
		return fmt.Sprintf("%s: 0x%02X", sentinels[e.Kind], e.Code)
	case KindMBC2RAMMismatch:
		return fmt.Sprintf("%s: %d bytes", ErrMBC2RAMMismatch, e.RAMSize)
	case KindChecksumMismatch:
		return fmt.Sprintf("%s: expected 0x%02X, got 0x%02X", ErrChecksumMismatch, e.Expected, e.Actual)
	}
	return sentinels[e.Kind].Error()
}

// Unwrap returns the sentinel for the error's kind so errors.Is works.
// Unknown kinds unwrap to ErrHeader.
func (e *HeaderError) Unwrap() error {
	if !e.Kind.valid() {
		return ErrHeader
	}
	return sentinels[e.Kind]
}

func (k Kind) valid() bool {
	return int(k) < len(sentinels)
}

func truncated(need, got int) error {
	return &HeaderError{Kind: KindTruncated, Offset: need, Length: got}
}

func invalidCode(k Kind, code uint8) error {
	return &HeaderError{Kind: k, Code: code}
}
