package main

import "github.com/tmeridew/edofunc/cmd"

func main() {
	cmd.Execute()
}
