package main

import (
	"os"

	"sysinfo/pkg/commands"
)

func main() {
	os.Exit(commands.Execute())
}
