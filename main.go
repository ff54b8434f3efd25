package main

import "github.com/pomoterm/pomoterm/cmd"

func main() {
	cmd.Execute()
}
