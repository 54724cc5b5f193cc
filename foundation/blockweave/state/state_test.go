package state_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/weavelabs/blockweave/foundation/blockweave/database"
	"github.com/weavelabs/blockweave/foundation/blockweave/genesis"
	"github.com/weavelabs/blockweave/foundation/blockweave/state"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

func newState(t *testing.T) *state.State {
	st, err := state.New(state.Config{Genesis: genesis.Default()})
	if err != nil {
		t.Fatalf("\t%s\tShould be able to construct the state: %v", failed, err)
	}
	return st
}

// =============================================================================

func Test_MineTwoTransactions(t *testing.T) {
	t.Log("Given the need to mine a block with two transactions.")
	{
		t.Logf("\tTest 0:\tWhen submitting two transactions and mining.")
		{
			st := newState(t)

			tx1 := database.NewTx("alice", "bob", []byte("hello"), 100)
			tx2 := database.NewTx("bob", "alice", []byte("world"), 150)
			st.SubmitTransaction(tx1)
			st.SubmitTransaction(tx2)

			block, err := st.MineBlock("miner1")
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to mine a block: %v", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould be able to mine a block.", success)

			if block.Height != 1 {
				t.Fatalf("\t%s\tTest 0:\tShould mine at height 1: got %d", failed, block.Height)
			}
			t.Logf("\t%s\tTest 0:\tShould mine at height 1.", success)

			if len(block.Trans) != 2 || block.Trans[0].ID != tx1.ID || block.Trans[1].ID != tx2.ID {
				t.Fatalf("\t%s\tTest 0:\tShould include both transactions in submission order.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould include both transactions in submission order.", success)

			if block.TotalSize != 10 {
				t.Fatalf("\t%s\tTest 0:\tShould account 10 payload bytes: got %d", failed, block.TotalSize)
			}
			t.Logf("\t%s\tTest 0:\tShould account 10 payload bytes.", success)

			if st.MempoolLength() != 0 {
				t.Fatalf("\t%s\tTest 0:\tShould leave the mempool empty: got %d", failed, st.MempoolLength())
			}
			t.Logf("\t%s\tTest 0:\tShould leave the mempool empty.", success)

			if block.RecallBlockHash != st.GenesisBlock().Hash {
				t.Fatalf("\t%s\tTest 0:\tShould anchor the recall reference to genesis at height 1.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould anchor the recall reference to genesis at height 1.", success)

			if st.LatestBlock().Hash != block.Hash {
				t.Fatalf("\t%s\tTest 0:\tShould become the new tip.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould become the new tip.", success)

			payload, exists := st.GetData(tx1.ID)
			if !exists || string(payload) != "hello" {
				t.Fatalf("\t%s\tTest 0:\tShould return the original payload for tx1: got %q", failed, payload)
			}
			t.Logf("\t%s\tTest 0:\tShould return the original payload for tx1.", success)
		}
	}
}

func Test_DrainingLaw(t *testing.T) {
	t.Log("Given the need to cap the number of transactions per block.")
	{
		t.Logf("\tTest 0:\tWhen submitting 15 transactions and mining once.")
		{
			st := newState(t)

			for i := 0; i < 15; i++ {
				st.SubmitTransaction(database.NewTx("alice", fmt.Sprintf("target%d", i), []byte("data"), 0))
			}

			block, err := st.MineBlock("miner1")
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to mine a block: %v", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould be able to mine a block.", success)

			if len(block.Trans) != 10 {
				t.Fatalf("\t%s\tTest 0:\tShould include exactly 10 transactions: got %d", failed, len(block.Trans))
			}
			t.Logf("\t%s\tTest 0:\tShould include exactly 10 transactions.", success)

			for i, tx := range block.Trans {
				if tx.Target != fmt.Sprintf("target%d", i) {
					t.Fatalf("\t%s\tTest 0:\tShould include the first 10 in submission order: index %d got %s", failed, i, tx.Target)
				}
			}
			t.Logf("\t%s\tTest 0:\tShould include the first 10 in submission order.", success)

			if st.MempoolLength() != 5 {
				t.Fatalf("\t%s\tTest 0:\tShould leave 5 transactions pending: got %d", failed, st.MempoolLength())
			}
			t.Logf("\t%s\tTest 0:\tShould leave 5 transactions pending.", success)

			for i, tx := range st.Mempool() {
				if tx.Target != fmt.Sprintf("target%d", i+10) {
					t.Fatalf("\t%s\tTest 0:\tShould keep the remainder in relative order: index %d got %s", failed, i, tx.Target)
				}
			}
			t.Logf("\t%s\tTest 0:\tShould keep the remainder in relative order.", success)
		}
	}
}

func Test_EmptyMempool(t *testing.T) {
	t.Log("Given the need to make mining a no-op on an empty mempool.")
	{
		t.Logf("\tTest 0:\tWhen mining a fresh weave.")
		{
			st := newState(t)
			tipBefore := st.LatestBlock()

			if _, err := st.MineBlock("miner1"); !errors.Is(err, state.ErrNoTransactions) {
				t.Fatalf("\t%s\tTest 0:\tShould get ErrNoTransactions: got %v", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould get ErrNoTransactions.", success)

			if len(st.History()) != 1 {
				t.Fatalf("\t%s\tTest 0:\tShould leave the history unchanged: got %d", failed, len(st.History()))
			}
			t.Logf("\t%s\tTest 0:\tShould leave the history unchanged.", success)

			if st.LatestBlock().Hash != tipBefore.Hash {
				t.Fatalf("\t%s\tTest 0:\tShould leave the tip unchanged.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould leave the tip unchanged.", success)
		}
	}
}

func Test_ChainGrowth(t *testing.T) {
	t.Log("Given the need to validate heights and recall references over time.")
	{
		t.Logf("\tTest 0:\tWhen mining several blocks.")
		{
			st := newState(t)

			for i := 0; i < 5; i++ {
				st.SubmitTransaction(database.NewTx("alice", "bob", []byte("data"), 0))

				block, err := st.MineBlock("miner1")
				if err != nil {
					t.Fatalf("\t%s\tTest 0:\tShould be able to mine block %d: %v", failed, i+1, err)
				}

				if block.Height != uint64(i+1) {
					t.Fatalf("\t%s\tTest 0:\tShould increase the height by 1: got %d, exp %d", failed, block.Height, i+1)
				}

				if block.PrevBlockHash == block.Hash {
					t.Fatalf("\t%s\tTest 0:\tShould reference a different previous block.", failed)
				}

				if _, exists := st.GetBlock(block.RecallBlockHash); !exists {
					t.Fatalf("\t%s\tTest 0:\tShould pick a recall block that exists in the store.", failed)
				}

				if st.LatestBlock().Hash != block.Hash {
					t.Fatalf("\t%s\tTest 0:\tShould track the tip.", failed)
				}
			}
			t.Logf("\t%s\tTest 0:\tShould increase the height by 1 on every block.", success)
			t.Logf("\t%s\tTest 0:\tShould pick recall blocks that exist in the store.", success)
			t.Logf("\t%s\tTest 0:\tShould track the tip.", success)

			if len(st.History()) != 6 {
				t.Fatalf("\t%s\tTest 0:\tShould hold 6 entries in the history: got %d", failed, len(st.History()))
			}
			t.Logf("\t%s\tTest 0:\tShould hold 6 entries in the history.", success)
		}
	}
}

func Test_MiningControl(t *testing.T) {
	t.Log("Given the need to validate the mining control state machine.")
	{
		t.Logf("\tTest 0:\tWhen toggling the mining flags.")
		{
			st := newState(t)

			if st.IsMiningEnabled() || st.ShouldStopMining() {
				t.Fatalf("\t%s\tTest 0:\tShould start idle.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould start idle.", success)

			st.StartMining()
			if !st.IsMiningEnabled() || st.ShouldStopMining() {
				t.Fatalf("\t%s\tTest 0:\tShould be mining after StartMining.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould be mining after StartMining.", success)

			st.StopMining()
			if st.IsMiningEnabled() || !st.ShouldStopMining() {
				t.Fatalf("\t%s\tTest 0:\tShould be stopped after StopMining.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould be stopped after StopMining.", success)

			st.StartMining()
			if !st.IsMiningEnabled() || st.ShouldStopMining() {
				t.Fatalf("\t%s\tTest 0:\tShould clear the stop request on StartMining.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould clear the stop request on StartMining.", success)
		}
	}
}

func Test_GetBlockAbsence(t *testing.T) {
	t.Log("Given the need to treat absence as a normal outcome.")
	{
		t.Logf("\tTest 0:\tWhen asking for unknown hashes.")
		{
			st := newState(t)

			if _, exists := st.GetBlock("deadbeef"); exists {
				t.Fatalf("\t%s\tTest 0:\tShould not find an unknown block.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould not find an unknown block.", success)

			if _, exists := st.GetData("deadbeef"); exists {
				t.Fatalf("\t%s\tTest 0:\tShould not find data for an unknown transaction.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould not find data for an unknown transaction.", success)
		}
	}
}
