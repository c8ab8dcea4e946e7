package main

import "github.com/hookward/ward/cmd"

func main() {
	cmd.Execute()
}
