package main

import "github.com/itsmostafa/papersum/cmd"

func main() {
	cmd.Execute()
}
