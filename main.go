package main

import "github.com/bankctl/bankctl/cmd"

func main() {
	cmd.Execute()
}
