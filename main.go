package main

import "github.com/theirongolddev/wtrack/cmd"

func main() {
	cmd.Execute()
}
