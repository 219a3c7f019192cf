package main

import "github.com/philipparndt/rtweekend/cmd"

func main() {
	cmd.Execute()
}
