package main

import "cursohub/cmd/cursoctl/command"

func main() {
	command.Execute()
}
