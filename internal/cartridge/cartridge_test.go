package cartridge

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-multierror"
)

func TestValidate(t *testing.T) {
	corrupt := func(f func(rom []byte)) []byte {
		rom := validROM()
		f(rom)
		return rom
	}

	for _, tc := range []struct {
		name     string
		rom      []byte
		wantKind Kind
		wantErr  error
	}{
		{"valid", validROM(), 0, nil},
		{"mbc2 no ram", buildROM("X", 0x06, 0x02, 0x01, 0x8000), 0, nil},
		{"mbc7", buildROM("X", 0x22, 0x08, 0x00, 0x8000), 0, nil},
		{"logo", corrupt(func(rom []byte) { rom[0x0110] ^= 0xFF }), KindLogoMismatch, ErrLogoMismatch},
		{"type", buildROM("X", 0x04, 0x00, 0x00, 0x8000), KindInvalidCartridgeType, ErrInvalidCartridgeType},
		{"rom size", buildROM("X", 0x00, 0x09, 0x00, 0x8000), KindInvalidROMSize, ErrInvalidROMSize},
		{"ram size", buildROM("X", 0x00, 0x00, 0x07, 0x8000), KindInvalidRAMSize, ErrInvalidRAMSize},
		{"mbc2 ram", buildROM("X", 0x05, 0x00, 0x02, 0x8000), KindMBC2RAMMismatch, ErrMBC2RAMMismatch},
		{"checksum", corrupt(func(rom []byte) { rom[0x014D]++ }), KindChecksumMismatch, ErrChecksumMismatch},
		{"truncated", validROM()[:0x0100], KindTruncated, ErrTruncated},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.rom)
			if tc.wantErr == nil {
				if err != nil {
					t.Errorf("expected nil, got %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			var herr *HeaderError
			if !errors.As(err, &herr) || herr.Kind != tc.wantKind {
				t.Errorf("expected kind %d, got %v", tc.wantKind, err)
			}
		})
	}
}

func TestValidate_Order(t *testing.T) {
	// a bad logo and a bad checksum, the logo is checked first
	rom := validROM()
	rom[0x0104] = 0
	rom[0x014D]++
	if err := Validate(rom); !errors.Is(err, ErrLogoMismatch) {
		t.Errorf("expected ErrLogoMismatch, got %v", err)
	}

	// a bad type and a bad RAM size, the type is checked first
	rom = buildROM("X", 0xFF, 0x00, 0x09, 0x8000)
	if err := Validate(rom); !errors.Is(err, ErrInvalidCartridgeType) {
		t.Errorf("expected ErrInvalidCartridgeType, got %v", err)
	}
}

func TestValidate_Truncated(t *testing.T) {
	full := validROM()
	for n := 0; n < 0x014E; n++ {
		err := Validate(full[:n])
		if !errors.Is(err, ErrTruncated) {
			t.Fatalf("len %#x: expected ErrTruncated, got %v", n, err)
		}
	}
	if err := Validate(full[:0x014E]); err != nil {
		t.Errorf("expected nil for a header ending at the checksum, got %v", err)
	}
}

func TestValidate_Idempotent(t *testing.T) {
	for _, rom := range [][]byte{validROM(), make([]byte, 0x8000)} {
		before := append([]byte(nil), rom...)
		first, second := Validate(rom), Validate(rom)
		if (first == nil) != (second == nil) || (first != nil && first.Error() != second.Error()) {
			t.Errorf("expected identical results, got %v and %v", first, second)
		}
		if !bytes.Equal(before, rom) {
			t.Error("validation modified the ROM")
		}
	}
}

func TestDiagnose(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		if err := Diagnose(validROM()); err != nil {
			t.Errorf("expected nil, got %v", err)
		}
	})
	t.Run("every failure", func(t *testing.T) {
		rom := buildROM("X", 0x05, 0x0A, 0x03, 0x8000)
		rom[0x0104] = 0
		rom[0x014D]++

		err := Diagnose(rom)
		var merr *multierror.Error
		if !errors.As(err, &merr) {
			t.Fatalf("expected *multierror.Error, got %T", err)
		}
		want := []error{ErrLogoMismatch, ErrInvalidROMSize, ErrMBC2RAMMismatch, ErrChecksumMismatch}
		if len(merr.Errors) != len(want) {
			t.Fatalf("expected %d errors, got %d: %v", len(want), len(merr.Errors), merr)
		}
		for i, w := range want {
			if !errors.Is(merr.Errors[i], w) {
				t.Errorf("error %d: expected %v, got %v", i, w, merr.Errors[i])
			}
		}
		if first := Validate(rom); !errors.Is(first, ErrLogoMismatch) {
			t.Errorf("expected Validate to stop at the logo, got %v", first)
		}
	})
	t.Run("skips consistency", func(t *testing.T) {
		rom := buildROM("X", 0x05, 0x00, 0x08, 0x8000)
		err := Diagnose(rom)
		if !errors.Is(err, ErrInvalidRAMSize) {
			t.Errorf("expected ErrInvalidRAMSize, got %v", err)
		}
		if errors.Is(err, ErrMBC2RAMMismatch) {
			t.Error("consistency should not run without a decoded RAM size")
		}
	})
	t.Run("truncated", func(t *testing.T) {
		err := Diagnose(make([]byte, 0x0100))
		var merr *multierror.Error
		if !errors.As(err, &merr) {
			t.Fatalf("expected *multierror.Error, got %T", err)
		}
		// consistency is skipped, every other check truncates
		if len(merr.Errors) != 5 {
			t.Errorf("expected 5 errors, got %d: %v", len(merr.Errors), merr)
		}
		for _, e := range merr.Errors {
			if !errors.Is(e, ErrTruncated) {
				t.Errorf("expected ErrTruncated, got %v", e)
			}
		}
	})
}

func TestNew(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		content := validROM()
		r, err := New("tetris.gb", content)
		if err != nil {
			t.Fatalf("unexpected error %v", err)
		}
		if r.Path() != "tetris.gb" || r.Title() != "TETRIS" || r.Len() != len(content) {
			t.Errorf("unexpected rom %s %q %d", r.Path(), r.Title(), r.Len())
		}
		if !r.SizeMatches() {
			t.Error("expected 32kB image to match its header")
		}

		// the rom keeps its own copy
		digest := r.Digest()
		content[0x0200] = 0xFF
		if r.Digest() != digest || r.Bytes()[0x0200] != 0x00 {
			t.Error("rom changed with the caller's buffer")
		}
		b := r.Bytes()
		b[0x0200] = 0xFF
		if r.Digest() != digest {
			t.Error("rom changed through Bytes")
		}
	})
	t.Run("digest differs", func(t *testing.T) {
		a, _ := New("a.gb", validROM())
		rom := validROM()
		rom[0x7FFF] = 0x01
		b, _ := New("b.gb", rom)
		if a.Digest() == b.Digest() {
			t.Error("expected different digests")
		}
	})
	t.Run("invalid", func(t *testing.T) {
		r, err := New("bad.gb", make([]byte, 0x8000))
		if r != nil || !errors.Is(err, ErrLogoMismatch) {
			t.Errorf("expected nil rom and ErrLogoMismatch, got %v, %v", r, err)
		}
	})
	t.Run("header ends at checksum", func(t *testing.T) {
		for _, n := range []int{0x014E, 0x014F} {
			content := validROM()[:n]
			if err := Validate(content); err != nil {
				t.Fatalf("len %#x: expected Validate to pass, got %v", n, err)
			}
			r, err := New("short.gb", content)
			if err != nil || r == nil {
				t.Fatalf("len %#x: expected a rom, got %v", n, err)
			}
			h := r.Header()
			if h.HasGlobalChecksum || h.GlobalChecksum != 0 || h.GlobalChecksumOK(content) {
				t.Errorf("len %#x: expected no global checksum, got 0x%04X", n, h.GlobalChecksum)
			}
			if h.Title != "TETRIS" || h.BankType != BankROM {
				t.Errorf("len %#x: unexpected header %s", n, h.String())
			}
		}
	})
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tetris.gb")
	if err := os.WriteFile(path, validROM(), 0o644); err != nil {
		t.Fatal(err)
	}

	r, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if r.Path() != path || r.Title() != "TETRIS" {
		t.Errorf("unexpected rom %s %q", r.Path(), r.Title())
	}

	_, err = Load(filepath.Join(dir, "missing.gb"))
	var perr *os.PathError
	if !errors.As(err, &perr) || !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected the read error unchanged, got %v", err)
	}
	var herr *HeaderError
	if errors.As(err, &herr) {
		t.Error("I/O error reported as a header error")
	}
}

func TestHeaderError_UnknownKind(t *testing.T) {
	err := &HeaderError{Kind: 42}
	if msg := err.Error(); msg != "invalid header: unknown kind 42" {
		t.Errorf("expected unknown kind message, got %q", msg)
	}
	if !errors.Is(err, ErrHeader) {
		t.Error("expected errors.Is ErrHeader")
	}
	if errors.Is(err, ErrTruncated) {
		t.Error("unknown kind matched ErrTruncated")
	}
}
