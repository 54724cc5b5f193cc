package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/weavelabs/blockweave/foundation/blockweave/wallet"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a new wallet address",
	Run:   generateRun,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func generateRun(cmd *cobra.Command, args []string) {
	w, err := wallet.New()
	if err != nil {
		log.Fatal(err)
	}

	path := getAddressPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		log.Fatal(err)
	}

	if err := os.WriteFile(path, []byte(w.Address()), 0600); err != nil {
		log.Fatal(err)
	}

	fmt.Println(w.Address())
}
