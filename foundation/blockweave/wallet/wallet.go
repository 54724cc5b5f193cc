// Package wallet provides the client side construction of data transactions.
// A wallet is nothing more than an address; there are no keys and no
// signatures on this weave.
package wallet

import (
	"crypto/rand"
	"fmt"
	"strings"

	"github.com/weavelabs/blockweave/foundation/blockweave/database"
)

// AddressLength is the number of hex characters in a wallet address.
const AddressLength = 43

// Wallet represents an address that can own data on the weave.
type Wallet struct {
	address string
}

// New generates a wallet with a random address.
func New() (*Wallet, error) {
	const hexDigits = "0123456789abcdef"

	buf := make([]byte, AddressLength)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("generating address: %w", err)
	}

	var sb strings.Builder
	for _, b := range buf {
		sb.WriteByte(hexDigits[int(b)%len(hexDigits)])
	}

	return &Wallet{address: sb.String()}, nil
}

// FromAddress constructs a wallet around an existing address.
func FromAddress(address string) *Wallet {
	return &Wallet{address: strings.TrimSpace(address)}
}

// Address returns the wallet's address.
func (w *Wallet) Address() string {
	return w.address
}

// CreateTx constructs a data transaction owned by this wallet.
func (w *Wallet) CreateTx(target string, payload []byte, reward uint64) database.Tx {
	return database.NewTx(w.address, target, payload, reward)
}
