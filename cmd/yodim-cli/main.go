package main

import "github.com/Diyorbek-2226/marhumlarniEslap/internal/cmd"

func main() {
	cmd.Execute()
}
