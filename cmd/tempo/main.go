package main

import (
	"tempo/cmd/tempo/cmd"
)

func main() {
	cmd.Execute()
}
