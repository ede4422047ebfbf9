package main

import "github.com/mmann1123/GWU-Course-Calendar/cmd"

func main() {
	cmd.Execute()
}
