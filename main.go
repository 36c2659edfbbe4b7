package main

import "github.com/wkalt/cdrcat/cmd"

func main() {
	cmd.Execute()
}
