package main

import "github.com/netxfw/eventlog/cmd/eventlog/commands"

func main() {
	commands.Execute()
}
