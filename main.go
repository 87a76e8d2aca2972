package main

import "github.com/ngld/shader-tools/cmd"

func main() {
	cmd.Execute()
}
