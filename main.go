package main

import "github.com/alexiusacademia/gotbb/cmd"

func main() {
	cmd.Execute()
}
