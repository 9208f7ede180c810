package main

import "gojoint/cmd"

func main() {
	cmd.Execute()
}
