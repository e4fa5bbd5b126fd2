package main

import "jt/cmd"

func main() {
	cmd.Execute()
}
