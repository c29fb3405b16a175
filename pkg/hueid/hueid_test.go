package hueid

import (
	"strings"
	"testing"

	"github.com/tbaccus/hue-dispatch/pkg/codes"
)

func TestValidateBridgeAddress(t *testing.T) {
	valid := []string{"192.168.1.2", "0.0.0.0", "255.255.255.255", "10.0.0.1"}
	for _, addr := range valid {
		if err := ValidateBridgeAddress(addr); err != nil {
			t.Errorf("ValidateBridgeAddress(%q) = %v, want nil", addr, err)
		}
	}

	invalid := []string{
		"192.168.1",          // three octets
		"192.168.1.2.3",      // five octets
		"192.168.1.256",      // octet out of range
		"192.168.1.a",        // non-numeric octet
		"1192.168.1.2550",    // too long
		"192..1.2",           // empty octet
		" 192.168.1.2",       // leading space
		"fe80::1",            // not IPv4
	}
	for _, addr := range invalid {
		err := ValidateBridgeAddress(addr)
		if err == nil {
			t.Errorf("ValidateBridgeAddress(%q) = nil, want error", addr)
			continue
		}
		if !codes.Is(err, codes.ErrInvalidFormat) {
			t.Errorf("ValidateBridgeAddress(%q) code = %v, want INVALID_FORMAT", addr, err)
		}
	}

	if err := ValidateBridgeAddress(""); !codes.Is(err, codes.ErrInvalidArgument) {
		t.Errorf("empty address = %v, want INVALID_ARGUMENT", err)
	}
}

func TestValidateBridgeID(t *testing.T) {
	if err := ValidateBridgeID("001788fffe4f2ab1"); err != nil {
		t.Errorf("valid bridge id rejected: %v", err)
	}

	invalid := []string{
		"001788fffe4f2ab",   // 15 chars
		"001788fffe4f2ab12", // 17 chars
		"001788FFFE4F2AB1",  // uppercase
		"001788fffe4f2abg",  // non-hex
	}
	for _, id := range invalid {
		if err := ValidateBridgeID(id); !codes.Is(err, codes.ErrInvalidFormat) {
			t.Errorf("ValidateBridgeID(%q) = %v, want INVALID_FORMAT", id, err)
		}
	}
}

func TestValidateAppKey(t *testing.T) {
	key := strings.Repeat("a", 35) + "B9_-0"
	if len(key) != AppKeyLength {
		t.Fatalf("test key length %d", len(key))
	}
	if err := ValidateAppKey(key); err != nil {
		t.Errorf("valid app key rejected: %v", err)
	}

	if err := ValidateAppKey(strings.Repeat("a", 39)); !codes.Is(err, codes.ErrInvalidFormat) {
		t.Error("39-char key should be rejected")
	}
	if err := ValidateAppKey(strings.Repeat("a", 41)); !codes.Is(err, codes.ErrInvalidFormat) {
		t.Error("41-char key should be rejected")
	}
	if err := ValidateAppKey(strings.Repeat("a", 39) + "!"); !codes.Is(err, codes.ErrInvalidFormat) {
		t.Error("key with invalid character should be rejected")
	}
}

func TestValidateResourceID(t *testing.T) {
	if err := ValidateResourceID("ffffffff-ffff-ffff-ffff-ffffffffffff"); err != nil {
		t.Errorf("valid resource id rejected: %v", err)
	}
	if err := ValidateResourceID("12345678-1234-1234-1234-123456789abc"); err != nil {
		t.Errorf("valid resource id rejected: %v", err)
	}

	invalid := []string{
		"ffffffff-ffff-ffff-ffff-fffffffffff",    // 35 chars
		"ffffffff-ffff-ffff-ffff-fffffffffffff",  // 37 chars
		"ffffffffxffff-ffff-ffff-ffffffffffff",   // dash misplaced
		"gfffffff-ffff-ffff-ffff-ffffffffffff",   // non-hex
		"ffffffff_ffff_ffff_ffff_ffffffffffff",   // wrong separators
	}
	for _, id := range invalid {
		if err := ValidateResourceID(id); !codes.Is(err, codes.ErrInvalidFormat) {
			t.Errorf("ValidateResourceID(%q) = %v, want INVALID_FORMAT", id, err)
		}
	}
}
