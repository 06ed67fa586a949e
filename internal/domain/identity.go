package domain

import (
	"crypto/sha256"
	"encoding/hex"
)

// IDLength is the number of hex characters kept from the URL digest.
const IDLength = 16

// DeriveID hashes the raw URL bytes and keeps a fixed-length hex prefix.
func DeriveID(url string) ItemID {
	sum := sha256.Sum256([]byte(url))
	return ItemID(hex.EncodeToString(sum[:])[:IDLength])
}
