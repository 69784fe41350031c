package cartridge

import (
	"fmt"
	"strings"
)

const (
	offsetEntryPoint        = 0x0100
	offsetLogo              = 0x0104
	offsetLogoEnd           = 0x0134
	offsetTitle             = 0x0134
	offsetManufacturerCode  = 0x013F
	offsetCGBFlag           = 0x0143
	offsetNewLicenseeCode   = 0x0144
	offsetSGBFlag           = 0x0146
	offsetCartridgeType     = 0x0147
	offsetROMSize           = 0x0148
	offsetRAMSize           = 0x0149
	offsetDestinationCode   = 0x014A
	offsetOldLicenseeCode   = 0x014B
	offsetMaskROMVersion    = 0x014C
	offsetHeaderChecksum    = 0x014D
	offsetGlobalChecksum    = 0x014E
	offsetChecksumStart     = 0x0134
	offsetChecksumEnd       = 0x014C
	headerEnd               = 0x0150
	headerMinLength         = offsetHeaderChecksum + 1
	oldLicenseeUseNewFormat = 0x33
)

type Flag uint8

const (
	FlagOnlyDMG Flag = iota
	FlagSupportsCGB
	FlagOnlyCGB
)

// Header represents the header of a cartridge, each cartridge has a header and is
// located at the address space 0x0100-0x014F. The header contains information about
// the cartridge itself, and the hardware it expects to run on.
type Header struct {
	// 0x0100-0x0103 - EntryPoint, usually a NOP followed by a JP to 0x0150.
	EntryPoint [4]byte

	// 0x0134-0x0143 - Title of the game, upper case ASCII padded with zeroes.
	Title string

	// 0x013F-0x0142 - ManufacturerCode of the game, only present on newer
	// cartridges where it overlaps the title.
	ManufacturerCode string

	// 0x0143 - CartridgeGBMode of the game. In older cartridges this byte was part
	// of the title, but the Colour Game Boy and later models interpret this byte
	// to determine if the cartridge is compatible with the Colour Game Boy.
	CartridgeGBMode Flag

	// 0x0144-0x0145 - NewLicenseeCode of the game. Only meaningful when the
	// OldLicenseeCode is 0x33.
	NewLicenseeCode string
	SGBFlag         bool
	CartridgeType   Type
	BankType        MemoryBankType
	ROMSize         uint
	RAMSize         uint
	CountryCode     uint8
	OldLicenseeCode uint8
	MaskROMVersion  uint8
	HeaderChecksum  uint8
	GlobalChecksum  uint16

	// HasGlobalChecksum is false when the image ends before 0x014E-0x014F.
	HasGlobalChecksum bool
}

// ParseHeader decodes the header of the given ROM. The logo, consistency and
// header checksum are not checked here, see Validate. An image may end right
// after the header checksum, in which case HasGlobalChecksum is false.
func ParseHeader(rom []byte) (*Header, error) {
	if len(rom) < headerMinLength {
		return nil, truncated(headerMinLength, len(rom))
	}
	h := &Header{}

	copy(h.EntryPoint[:], rom[offsetEntryPoint:offsetLogo])

	// parse the mode of the cartridge and parse the title accordingly
	switch rom[offsetCGBFlag] {
	case 0x80:
		h.CartridgeGBMode = FlagSupportsCGB
	case 0xC0:
		h.CartridgeGBMode = FlagOnlyCGB
	default:
		h.CartridgeGBMode = FlagOnlyDMG
	}
	if h.CartridgeGBMode == FlagOnlyDMG {
		h.Title = cleanASCII(rom[offsetTitle:offsetNewLicenseeCode])
	} else {
		h.Title = cleanASCII(rom[offsetTitle:offsetCGBFlag])
	}

	h.ManufacturerCode = cleanASCII(rom[offsetManufacturerCode:offsetCGBFlag])
	h.NewLicenseeCode = cleanASCII(rom[offsetNewLicenseeCode:offsetSGBFlag])
	h.SGBFlag = rom[offsetSGBFlag] == 0x03

	var err error
	h.CartridgeType = Type(rom[offsetCartridgeType])
	if h.BankType, err = h.CartridgeType.BankType(); err != nil {
		return nil, err
	}
	if h.ROMSize, err = DecodeROMSize(rom[offsetROMSize]); err != nil {
		return nil, err
	}
	if h.RAMSize, err = DecodeRAMSize(rom[offsetRAMSize]); err != nil {
		return nil, err
	}

	h.CountryCode = rom[offsetDestinationCode]
	h.OldLicenseeCode = rom[offsetOldLicenseeCode]
	h.MaskROMVersion = rom[offsetMaskROMVersion]
	h.HeaderChecksum = rom[offsetHeaderChecksum]

	// the global checksum is stored big endian
	if len(rom) >= headerEnd {
		h.GlobalChecksum = uint16(rom[offsetGlobalChecksum])<<8 | uint16(rom[offsetGlobalChecksum+1])
		h.HasGlobalChecksum = true
	}

	return h, nil
}

// cleanASCII trims the zero padding and drops anything that isn't printable.
func cleanASCII(b []byte) string {
	var sb strings.Builder
	for _, c := range b {
		if c == 0 {
			break
		}
		if c >= 0x20 && c < 0x7F {
			sb.WriteByte(c)
		}
	}
	return strings.TrimRight(sb.String(), " ")
}

func (h *Header) GameboyColor() bool {
	return h.CartridgeGBMode == FlagOnlyCGB || h.CartridgeGBMode == FlagSupportsCGB
}

func (h *Header) Hardware() string {
	switch h.CartridgeGBMode {
	case FlagOnlyDMG:
		return "DMG"
	case FlagSupportsCGB:
		return "CGB"
	case FlagOnlyCGB:
		return "CGB"
	default:
		return "Unknown"
	}
}

// Licensee returns the licensee code in whichever format the header uses.
func (h *Header) Licensee() string {
	if h.OldLicenseeCode == oldLicenseeUseNewFormat {
		return h.NewLicenseeCode
	}
	return fmt.Sprintf("%02X", h.OldLicenseeCode)
}

// GlobalChecksumOK reports whether the stored global checksum matches rom.
// It is always false when the image carries no global checksum.
func (h *Header) GlobalChecksumOK(rom []byte) bool {
	return h.HasGlobalChecksum && GlobalChecksum(rom) == h.GlobalChecksum
}

func (h *Header) String() string {
	return fmt.Sprintf("%s Mode: %s | Type: %s | ROM Size: %dkB | RAM Size: %dkB",
		h.Title, h.Hardware(), h.CartridgeType, h.ROMSize/1024, h.RAMSize/1024)
}
