package wallet_test

import (
	"strings"
	"testing"

	"github.com/weavelabs/blockweave/foundation/blockweave/wallet"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

func Test_Wallet(t *testing.T) {
	t.Log("Given the need to validate wallet addresses.")
	{
		t.Logf("\tTest 0:\tWhen generating a new wallet.")
		{
			w, err := wallet.New()
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to generate a wallet: %v", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould be able to generate a wallet.", success)

			addr := w.Address()
			if len(addr) != wallet.AddressLength {
				t.Fatalf("\t%s\tTest 0:\tShould have a %d character address: got %d", failed, wallet.AddressLength, len(addr))
			}
			t.Logf("\t%s\tTest 0:\tShould have a %d character address.", success, wallet.AddressLength)

			if strings.Trim(addr, "0123456789abcdef") != "" {
				t.Fatalf("\t%s\tTest 0:\tShould only contain hex characters: got %s", failed, addr)
			}
			t.Logf("\t%s\tTest 0:\tShould only contain hex characters.", success)
		}

		t.Logf("\tTest 1:\tWhen creating a transaction from a wallet.")
		{
			w := wallet.FromAddress("  alice \n")

			if w.Address() != "alice" {
				t.Fatalf("\t%s\tTest 1:\tShould trim whitespace from the address: got %q", failed, w.Address())
			}
			t.Logf("\t%s\tTest 1:\tShould trim whitespace from the address.", success)

			tx := w.CreateTx("bob", []byte("hello"), 100)
			if tx.Owner != "alice" || tx.Target != "bob" || tx.Reward != 100 {
				t.Fatalf("\t%s\tTest 1:\tShould stamp the wallet as the owner.", failed)
			}
			t.Logf("\t%s\tTest 1:\tShould stamp the wallet as the owner.", success)
		}
	}
}
