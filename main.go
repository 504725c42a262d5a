package main

import "github.com/icr2-tools/trackscan/cmd"

func main() {
	cmd.Execute()
}
