package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get [tx id]",
	Short: "Retrieve stored data by transaction id",
	Args:  cobra.ExactArgs(1),
	Run:   getRun,
}

func init() {
	rootCmd.AddCommand(getCmd)
}

func getRun(cmd *cobra.Command, args []string) {
	resp, err := http.Get(fmt.Sprintf("%s/v1/data/%s", url, args[0]))
	if err != nil {
		log.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Fatalf("node returned %s", resp.Status)
	}

	var result struct {
		TxID    string `json:"tx_id"`
		Payload []byte `json:"payload"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%s\n", result.Payload)
}
