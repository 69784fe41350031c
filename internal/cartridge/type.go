package cartridge

import "fmt"

// Type is the raw cartridge type code stored at 0x0147.
type Type uint8

const (
	ROM               Type = 0x00
	MBC1              Type = 0x01
	MBC1RAM           Type = 0x02
	MBC1RAMBATT       Type = 0x03
	MBC2              Type = 0x05
	MBC2BATT          Type = 0x06
	ROMRAM            Type = 0x08
	ROMRAMBATT        Type = 0x09
	MMM01             Type = 0x0B
	MMM01RAM          Type = 0x0C
	MMM01RAMBATT      Type = 0x0D
	MBC3TIMERBATT     Type = 0x0F
	MBC3TIMERRAMBATT  Type = 0x10
	MBC3              Type = 0x11
	MBC3RAM           Type = 0x12
	MBC3RAMBATT       Type = 0x13
	MBC5              Type = 0x19
	MBC5RAM           Type = 0x1A
	MBC5RAMBATT       Type = 0x1B
	MBC5RUMBLE        Type = 0x1C
	MBC5RUMBLERAM     Type = 0x1D
	MBC5RUMBLERAMBATT Type = 0x1E
	MBC6              Type = 0x20
	MBC7              Type = 0x22
)

var typeNames = map[Type]string{
	ROM:               "ROM ONLY",
	MBC1:              "MBC1",
	MBC1RAM:           "MBC1+RAM",
	MBC1RAMBATT:       "MBC1+RAM+BATTERY",
	MBC2:              "MBC2",
	MBC2BATT:          "MBC2+BATTERY",
	ROMRAM:            "ROM+RAM",
	ROMRAMBATT:        "ROM+RAM+BATTERY",
	MMM01:             "MMM01",
	MMM01RAM:          "MMM01+RAM",
	MMM01RAMBATT:      "MMM01+RAM+BATTERY",
	MBC3TIMERBATT:     "MBC3+TIMER+BATTERY",
	MBC3TIMERRAMBATT:  "MBC3+TIMER+RAM+BATTERY",
	MBC3:              "MBC3",
	MBC3RAM:           "MBC3+RAM",
	MBC3RAMBATT:       "MBC3+RAM+BATTERY",
	MBC5:              "MBC5",
	MBC5RAM:           "MBC5+RAM",
	MBC5RAMBATT:       "MBC5+RAM+BATTERY",
	MBC5RUMBLE:        "MBC5+RUMBLE",
	MBC5RUMBLERAM:     "MBC5+RUMBLE+RAM",
	MBC5RUMBLERAMBATT: "MBC5+RUMBLE+RAM+BATTERY",
	MBC6:              "MBC6",
	MBC7:              "MBC7+SENSOR+RUMBLE+RAM+BATTERY",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN (0x%02X)", uint8(t))
}

// BankType decodes the type code into its controller family.
func (t Type) BankType() (MemoryBankType, error) {
	return DecodeBankType(uint8(t))
}

func (t Type) HasBattery() bool {
	switch t {
	case MBC1RAMBATT, MBC2BATT, ROMRAMBATT, MMM01RAMBATT,
		MBC3TIMERBATT, MBC3TIMERRAMBATT, MBC3RAMBATT,
		MBC5RAMBATT, MBC5RUMBLERAMBATT, MBC7:
		return true
	}
	return false
}

func (t Type) HasTimer() bool {
	return t == MBC3TIMERBATT || t == MBC3TIMERRAMBATT
}

func (t Type) HasRumble() bool {
	switch t {
	case MBC5RUMBLE, MBC5RUMBLERAM, MBC5RUMBLERAMBATT, MBC7:
		return true
	}
	return false
}

// MemoryBankType is the controller family a cartridge declares.
type MemoryBankType uint8

const (
	BankROM MemoryBankType = iota
	BankMBC1
	BankMBC2
	BankMMM01
	BankMBC3
	BankMBC5
	BankMBC6
	BankMBC7
)

func (m MemoryBankType) String() string {
	switch m {
	case BankROM:
		return "ROM"
	case BankMBC1:
		return "MBC1"
	case BankMBC2:
		return "MBC2"
	case BankMMM01:
		return "MMM01"
	case BankMBC3:
		return "MBC3"
	case BankMBC5:
		return "MBC5"
	case BankMBC6:
		return "MBC6"
	case BankMBC7:
		return "MBC7"
	}
	return fmt.Sprintf("MemoryBankType(%d)", uint8(m))
}

// DecodeBankType maps a cartridge type code to its controller family. Codes
// outside the table, including the HuC and camera types, are rejected.
func DecodeBankType(code uint8) (MemoryBankType, error) {
	switch {
	case code == 0x00, code == 0x08, code == 0x09:
		return BankROM, nil
	case code >= 0x01 && code <= 0x03:
		return BankMBC1, nil
	case code == 0x05, code == 0x06:
		return BankMBC2, nil
	case code >= 0x0B && code <= 0x0D:
		return BankMMM01, nil
	case code >= 0x0F && code <= 0x13:
		return BankMBC3, nil
	case code >= 0x19 && code <= 0x1E:
		return BankMBC5, nil
	case code == 0x20:
		return BankMBC6, nil
	case code == 0x22:
		return BankMBC7, nil
	}
	return 0, invalidCode(KindInvalidCartridgeType, code)
}
