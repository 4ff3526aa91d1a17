package main

import "craft-calculator/cmd"

func main() {
	cmd.Execute()
}
