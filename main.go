package main

import "github.com/theirongolddev/habit/cmd"

func main() {
	cmd.Execute()
}
