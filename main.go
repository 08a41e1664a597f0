package main

import "github.com/coffeeboi0811/glyphcam/cmd"

func main() {
	cmd.Execute()
}
