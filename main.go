package main

import (
	"os"

	"fortio.org/blackjack/cli"
)

func main() {
	os.Exit(cli.Main())
}
