package main

import "github.com/weavelabs/blockweave/app/wallet/cli/cmd"

func main() {
	cmd.Execute()
}
