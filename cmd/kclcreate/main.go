package main

import "github.com/gayfrogog/kclcreate/cmd/kclcreate/cmd"

func main() {
	cmd.Execute()
}
