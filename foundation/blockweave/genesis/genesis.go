// Package genesis maintains access to the genesis file.
package genesis

import (
	"encoding/json"
	"os"
	"time"
)

// Genesis represents the chain parameters fixed at the birth of the weave.
type Genesis struct {
	Date          time.Time `json:"date"`
	ChainName     string    `json:"chain_name"`      // A human readable name for this running weave.
	TransPerBlock uint16    `json:"trans_per_block"` // The maximum number of transactions drained into a block.
}

// Default returns the genesis parameters used when no genesis file exists.
func Default() Genesis {
	return Genesis{
		Date:          time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		ChainName:     "blockweave",
		TransPerBlock: 10,
	}
}

// Load opens and consumes the genesis file.
func Load(path string) (Genesis, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Genesis{}, err
	}

	var genesis Genesis
	if err := json.Unmarshal(content, &genesis); err != nil {
		return Genesis{}, err
	}

	return genesis, nil
}
