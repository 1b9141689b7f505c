package main

import "github.com/nihzaa/focusflow/cmd"

func main() {
	cmd.Execute()
}
