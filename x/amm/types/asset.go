package types

import "fmt"

// Asset identifies one side of the pool: either the ledger's native
// currency or a ledger-issued token. The distinction is decided once at
// initialization and matched explicitly wherever a transfer is issued,
// instead of scattering sentinel-id checks through the transfer logic.
type Asset struct {
	Native bool   `json:"native"`
	ID     uint64 `json:"id"`
}

// NativeAsset returns the Asset denoting the ledger's native currency.
func NativeAsset() Asset {
	return Asset{Native: true}
}

// TokenAsset returns the Asset for a ledger-issued token id.
func TokenAsset(id uint64) Asset {
	return Asset{ID: id}
}

// IsZero reports whether the asset is the zero value (unset).
func (a Asset) IsZero() bool {
	return !a.Native && a.ID == 0
}

// Equal reports whether two assets refer to the same ledger asset.
func (a Asset) Equal(b Asset) bool {
	return a.Native == b.Native && a.ID == b.ID
}

// Validate rejects the unset asset and token ids of zero.
func (a Asset) Validate() error {
	if a.Native && a.ID != 0 {
		return fmt.Errorf("native asset cannot carry a token id (got %d)", a.ID)
	}
	if a.IsZero() {
		return fmt.Errorf("asset is unset")
	}
	return nil
}

func (a Asset) String() string {
	if a.Native {
		return "native"
	}
	return fmt.Sprintf("token/%d", a.ID)
}
