package main

import "lampmc/cmd/lampmc/cmd"

func main() {
	cmd.Execute()
}
