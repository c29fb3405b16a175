// Package hueid validates the fixed-format strings the Hue API hands out:
// bridge address, bridge id, application key, and resource ids. Every
// deviation in length or character class is rejected before the value is
// copied anywhere.
package hueid

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/tbaccus/hue-dispatch/pkg/codes"
)

const (
	// BridgeAddressMaxLength is the longest dotted-quad IPv4 address.
	BridgeAddressMaxLength = 15
	// BridgeIDLength is the fixed bridge id length (16 hex chars).
	BridgeIDLength = 16
	// AppKeyLength is the fixed application key length.
	AppKeyLength = 40
	// ResourceIDLength is the fixed resource id length (8-4-4-4-12 form).
	ResourceIDLength = 36
)

// ValidateBridgeAddress checks addr is a dotted-quad IPv4 address with four
// numeric octets in [0,255].
func ValidateBridgeAddress(addr string) error {
	if addr == "" {
		return codes.New(codes.ErrInvalidArgument, "bridge address is required")
	}
	if len(addr) > BridgeAddressMaxLength {
		return codes.New(codes.ErrInvalidFormat, "bridge address longer than an IPv4 address")
	}
	octets := strings.Split(addr, ".")
	if len(octets) != 4 {
		return codes.New(codes.ErrInvalidFormat, "bridge address %q is not a dotted-quad IPv4 address", addr)
	}
	for _, oct := range octets {
		if oct == "" || len(oct) > 3 {
			return codes.New(codes.ErrInvalidFormat, "bridge address %q is not a dotted-quad IPv4 address", addr)
		}
		for i := 0; i < len(oct); i++ {
			if oct[i] < '0' || oct[i] > '9' {
				return codes.New(codes.ErrInvalidFormat, "bridge address %q contains a non-numeric octet", addr)
			}
		}
		n, err := strconv.Atoi(oct)
		if err != nil || n > 255 {
			return codes.New(codes.ErrInvalidFormat, "bridge address octet %q out of range", oct)
		}
	}
	return nil
}

// ValidateBridgeID checks id is exactly 16 lowercase hexadecimal characters.
func ValidateBridgeID(id string) error {
	if id == "" {
		return codes.New(codes.ErrInvalidArgument, "bridge id is required")
	}
	if len(id) != BridgeIDLength {
		return codes.New(codes.ErrInvalidFormat, "bridge id must be %d characters, got %d", BridgeIDLength, len(id))
	}
	for i := 0; i < len(id); i++ {
		if !isLowerHex(id[i]) {
			return codes.New(codes.ErrInvalidFormat, "bridge id %q is not lowercase hexadecimal", id)
		}
	}
	return nil
}

// ValidateAppKey checks key is exactly 40 characters of [A-Za-z0-9_-].
func ValidateAppKey(key string) error {
	if key == "" {
		return codes.New(codes.ErrInvalidArgument, "application key is required")
	}
	if len(key) != AppKeyLength {
		return codes.New(codes.ErrInvalidFormat, "application key must be %d characters, got %d", AppKeyLength, len(key))
	}
	for i := 0; i < len(key); i++ {
		if !isURLBase64(key[i]) {
			return codes.New(codes.ErrInvalidFormat, "application key contains invalid character %q", key[i])
		}
	}
	return nil
}

// ValidateResourceID checks id is a 36-character 8-4-4-4-12 hex-with-dashes
// resource id as returned by the Hue API.
func ValidateResourceID(id string) error {
	if id == "" {
		return codes.New(codes.ErrInvalidArgument, "resource id is required")
	}
	if len(id) != ResourceIDLength {
		return codes.New(codes.ErrInvalidFormat, "resource id must be %d characters, got %d", ResourceIDLength, len(id))
	}
	if _, err := uuid.Parse(id); err != nil {
		return codes.Wrap(codes.ErrInvalidFormat, err, "resource id %q", id)
	}
	return nil
}

func isLowerHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')
}

func isURLBase64(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z':
		return true
	case c >= 'a' && c <= 'z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '-' || c == '_':
		return true
	}
	return false
}
