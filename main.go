package main

import "github.com/SyedTasneemKousar/asana/cmd"

func main() {
	cmd.Execute()
}
