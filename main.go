package main

import "github.com/promptspec/promptspec/cmd"

func main() {
	cmd.Execute()
}
