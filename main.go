package main

import "clipjoin/cmd"

func main() {
	cmd.Execute()
}
