package main

import "github.com/meshtools/keyraw/cmd"

func main() {
	cmd.Execute()
}
