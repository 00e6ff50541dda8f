package main

import "github.com/beanthere/beanthere/cmd"

func main() {
	cmd.Execute()
}
