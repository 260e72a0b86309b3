package main

import "td/cmd/td/cmd"

func main() {
	cmd.Execute()
}
