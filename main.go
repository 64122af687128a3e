package main

import "github.com/nathanhack/hamming/cmd"

func main() {
	cmd.Execute()
}
