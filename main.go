package main

import "github.com/hance08/cashbook/cmd"

func main() {
	cmd.Execute()
}
