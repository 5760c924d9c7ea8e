package main

import "github.com/mouse-blink/datacom/cmd"

func main() {
	cmd.Execute()
}
