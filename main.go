package main

import "blightwatch-be/cmd"

func main() {
	cmd.Execute()
}
