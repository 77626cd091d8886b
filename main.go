package main

import "editorial/cmd"

func main() {
	cmd.Execute()
}
