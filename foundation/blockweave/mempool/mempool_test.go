package mempool_test

import (
	"fmt"
	"testing"

	"github.com/weavelabs/blockweave/foundation/blockweave/database"
	"github.com/weavelabs/blockweave/foundation/blockweave/mempool"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

func Test_FIFO(t *testing.T) {
	t.Log("Given the need to validate FIFO mempool behavior.")
	{
		t.Logf("\tTest 0:\tWhen draining fewer transactions than are pending.")
		{
			mp := mempool.New()

			for i := 0; i < 15; i++ {
				mp.Add(database.NewTx("alice", fmt.Sprintf("target%d", i), []byte("data"), 0))
			}

			if mp.Count() != 15 {
				t.Fatalf("\t%s\tTest 0:\tShould hold 15 transactions: got %d", failed, mp.Count())
			}
			t.Logf("\t%s\tTest 0:\tShould hold 15 transactions.", success)

			txs := mp.Drain(10)
			if len(txs) != 10 {
				t.Fatalf("\t%s\tTest 0:\tShould drain 10 transactions: got %d", failed, len(txs))
			}
			t.Logf("\t%s\tTest 0:\tShould drain 10 transactions.", success)

			for i, tx := range txs {
				if tx.Target != fmt.Sprintf("target%d", i) {
					t.Fatalf("\t%s\tTest 0:\tShould drain in submission order: index %d got %s", failed, i, tx.Target)
				}
			}
			t.Logf("\t%s\tTest 0:\tShould drain in submission order.", success)

			if mp.Count() != 5 {
				t.Fatalf("\t%s\tTest 0:\tShould leave 5 transactions pending: got %d", failed, mp.Count())
			}
			t.Logf("\t%s\tTest 0:\tShould leave 5 transactions pending.", success)

			for i, tx := range mp.Values() {
				if tx.Target != fmt.Sprintf("target%d", i+10) {
					t.Fatalf("\t%s\tTest 0:\tShould keep the remainder in relative order: index %d got %s", failed, i, tx.Target)
				}
			}
			t.Logf("\t%s\tTest 0:\tShould keep the remainder in relative order.", success)
		}

		t.Logf("\tTest 1:\tWhen draining more transactions than are pending.")
		{
			mp := mempool.New()
			mp.Add(database.NewTx("alice", "bob", []byte("data"), 0))

			txs := mp.Drain(10)
			if len(txs) != 1 || mp.Count() != 0 {
				t.Fatalf("\t%s\tTest 1:\tShould drain everything that is pending: got %d drained, %d left", failed, len(txs), mp.Count())
			}
			t.Logf("\t%s\tTest 1:\tShould drain everything that is pending.", success)

			if txs := mp.Drain(10); len(txs) != 0 {
				t.Fatalf("\t%s\tTest 1:\tShould drain nothing from an empty pool: got %d", failed, len(txs))
			}
			t.Logf("\t%s\tTest 1:\tShould drain nothing from an empty pool.", success)
		}

		t.Logf("\tTest 2:\tWhen truncating the pool.")
		{
			mp := mempool.New()
			mp.Add(database.NewTx("alice", "bob", []byte("data"), 0))
			mp.Truncate()

			if mp.Count() != 0 {
				t.Fatalf("\t%s\tTest 2:\tShould be empty after truncate: got %d", failed, mp.Count())
			}
			t.Logf("\t%s\tTest 2:\tShould be empty after truncate.", success)
		}
	}
}
