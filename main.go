package main

import "github.com/mouse-blink/grepnav/cmd"

func main() {
	cmd.Execute()
}
