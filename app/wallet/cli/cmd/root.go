// Package cmd contains the wallet app commands.
package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var (
	accountName string
	accountPath string
	url         string
)

const addrExtension = ".addr"

func init() {
	rootCmd.PersistentFlags().StringVarP(&accountName, "account", "a", "private.addr", "Name of the address file.")
	rootCmd.PersistentFlags().StringVarP(&accountPath, "account-path", "p", "zblock/accounts/", "Path to the directory with address files.")
	rootCmd.PersistentFlags().StringVarP(&url, "url", "u", "http://localhost:8080", "Url of the node.")
}

var rootCmd = &cobra.Command{
	Use:   "wallet",
	Short: "A simple blockweave wallet",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func getAddressPath() string {
	if !strings.HasSuffix(accountName, addrExtension) {
		accountName += addrExtension
	}

	return filepath.Join(accountPath, accountName)
}
