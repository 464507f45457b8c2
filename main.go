package main

import "github.com/theirongolddev/whatif/cmd"

func main() {
	cmd.Execute()
}
