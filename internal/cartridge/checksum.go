package cartridge

// HeaderChecksum folds 0x0134-0x014C the way the boot ROM does.
func HeaderChecksum(rom []byte) (uint8, error) {
	if len(rom) <= offsetChecksumEnd {
		return 0, truncated(offsetChecksumEnd+1, len(rom))
	}
	var sum uint8
	for _, b := range rom[offsetChecksumStart : offsetChecksumEnd+1] {
		sum = sum - b - 1
	}
	return sum, nil
}

// VerifyHeaderChecksum recomputes the header checksum and compares it with
// the value stored at 0x014D.
func VerifyHeaderChecksum(rom []byte) error {
	if len(rom) <= offsetHeaderChecksum {
		return truncated(offsetHeaderChecksum+1, len(rom))
	}
	actual, err := HeaderChecksum(rom)
	if err != nil {
		return err
	}
	if expected := rom[offsetHeaderChecksum]; expected != actual {
		return &HeaderError{Kind: KindChecksumMismatch, Expected: expected, Actual: actual}
	}
	return nil
}

// GlobalChecksum sums every byte of rom except the stored global checksum.
// Many licensed games ship with a wrong value, so it is never validated.
func GlobalChecksum(rom []byte) uint16 {
	var sum uint16
	for i, b := range rom {
		if i == offsetGlobalChecksum || i == offsetGlobalChecksum+1 {
			continue
		}
		sum += uint16(b)
	}
	return sum
}
