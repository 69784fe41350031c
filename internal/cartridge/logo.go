package cartridge

import "bytes"

// Logo is the bitmap every cartridge must carry at 0x0104-0x0133.
var Logo = [48]byte{
	0xCE, 0xED, 0x66, 0x66, 0xCC, 0x0D, 0x00, 0x0B, 0x03, 0x73, 0x00, 0x83, 0x00, 0x0C, 0x00, 0x0D,
	0x00, 0x08, 0x11, 0x1F, 0x88, 0x89, 0x00, 0x0E, 0xDC, 0xCC, 0x6E, 0xE6, 0xDD, 0xDD, 0xD9, 0x99,
	0xBB, 0xBB, 0x67, 0x63, 0x6E, 0x0E, 0xEC, 0xCC, 0xDD, 0xDC, 0x99, 0x9F, 0xBB, 0xB9, 0x33, 0x3E,
}

// VerifyLogo compares the logo region of rom against Logo.
func VerifyLogo(rom []byte) error {
	if len(rom) < offsetLogoEnd {
		return truncated(offsetLogoEnd, len(rom))
	}
	if !bytes.Equal(rom[offsetLogo:offsetLogoEnd], Logo[:]) {
		return &HeaderError{Kind: KindLogoMismatch}
	}
	return nil
}
