package main

import "github.com/primetrade/landing/cmd/primetrade/cmd"

func main() {
	cmd.Execute()
}
