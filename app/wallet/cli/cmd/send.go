package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"github.com/weavelabs/blockweave/foundation/blockweave/wallet"
)

var (
	target string
	reward uint64
	data   string
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send a data transaction to a node",
	Run:   sendRun,
}

func init() {
	rootCmd.AddCommand(sendCmd)
	sendCmd.Flags().StringVarP(&target, "target", "t", "", "Target address for the data.")
	sendCmd.Flags().Uint64VarP(&reward, "reward", "r", 0, "Reward offered for storing the data.")
	sendCmd.Flags().StringVarP(&data, "data", "d", "", "Data to store on the weave.")
}

func sendRun(cmd *cobra.Command, args []string) {
	address, err := os.ReadFile(getAddressPath())
	if err != nil {
		log.Fatal(err)
	}

	w := wallet.FromAddress(string(address))
	tx := w.CreateTx(target, []byte(data), reward)

	payload, err := json.Marshal(tx)
	if err != nil {
		log.Fatal(err)
	}

	resp, err := http.Post(fmt.Sprintf("%s/v1/tx/submit", url), "application/json", bytes.NewBuffer(payload))
	if err != nil {
		log.Fatal(err)
	}
	defer resp.Body.Close()

	fmt.Printf("status: %s\ntx id: %s\n", resp.Status, tx.ID)
}
