package main

import "github.com/iksnae/chatkeep/cmd"

func main() {
	cmd.Execute()
}
