package cartridge

// pokemonBlue is the 0x0134-0x014C range of a real cartridge, its stored
// checksum is 0xD3.
var pokemonBlue = []byte{
	0x50, 0x4F, 0x4B, 0x45, 0x4D, 0x4F, 0x4E, 0x20, 0x42, 0x4C, 0x55, 0x45, 0x00, 0x00, 0x00, 0x00,
	0x30, 0x31, 0x03, 0x13, 0x05, 0x03, 0x01, 0x33, 0x00,
}

// buildROM makes a synthetic ROM of the given size with the logo in place,
// the given type and size codes, and a valid header checksum.
func buildROM(title string, cartType, romSizeCode, ramSizeCode uint8, size int) []byte {
	rom := make([]byte, size)
	rom[0x0100], rom[0x0101], rom[0x0102], rom[0x0103] = 0x00, 0xC3, 0x50, 0x01
	copy(rom[0x0104:0x0134], Logo[:])

	tbytes := []byte(title)
	if len(tbytes) > 16 {
		tbytes = tbytes[:16]
	}
	copy(rom[0x0134:0x0144], tbytes)

	rom[0x0144], rom[0x0145] = '0', '1'
	rom[0x0147] = cartType
	rom[0x0148] = romSizeCode
	rom[0x0149] = ramSizeCode
	rom[0x014A] = 0x01
	rom[0x014B] = 0x33
	rom[0x014C] = 0x00
	fixChecksum(rom)

	return rom
}

// fixChecksum rewrites 0x014D to match the current header bytes.
func fixChecksum(rom []byte) {
	var sum uint8
	for addr := 0x0134; addr <= 0x014C; addr++ {
		sum = sum - rom[addr] - 1
	}
	rom[0x014D] = sum
}

// validROM is a 32kB ROM only cartridge that passes every check.
func validROM() []byte {
	return buildROM("TETRIS", 0x00, 0x00, 0x00, 32*1024)
}
