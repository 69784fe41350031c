package cartridge

const (
	romBankSize = 16 * 1024
	ramBankSize = 8 * 1024

	maxROMSizeCode = 0x08
)

// ramMAP follows the official table, so 0x05 (64kB) is smaller than 0x04.
// 0x01 is unused officially and treated as no RAM.
var ramMAP = map[uint8]uint{
	0x00: 0,
	0x01: 0,
	0x02: 8 * 1024,
	0x03: 32 * 1024,
	0x04: 128 * 1024,
	0x05: 64 * 1024,
}

// DecodeROMSize returns the ROM capacity in bytes, 32kB x (1 << code).
func DecodeROMSize(code uint8) (uint, error) {
	if code > maxROMSizeCode {
		return 0, invalidCode(KindInvalidROMSize, code)
	}
	return (32 * 1024) << code, nil
}

// DecodeRAMSize returns the external RAM capacity in bytes.
func DecodeRAMSize(code uint8) (uint, error) {
	size, ok := ramMAP[code]
	if !ok {
		return 0, invalidCode(KindInvalidRAMSize, code)
	}
	return size, nil
}

// ROMBanks returns the number of 16kB banks in size.
func ROMBanks(size uint) uint {
	return size / romBankSize
}

// RAMBanks returns the number of 8kB banks in size.
func RAMBanks(size uint) uint {
	return size / ramBankSize
}

// CheckConsistency rejects header combinations the hardware can't have.
// MBC2 carries its RAM on the controller, so the header must declare none.
func CheckConsistency(t MemoryBankType, ramSize uint) error {
	if t == BankMBC2 && ramSize != 0 {
		return &HeaderError{Kind: KindMBC2RAMMismatch, RAMSize: ramSize}
	}
	return nil
}
