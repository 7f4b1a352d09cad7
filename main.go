package main

import "github.com/voxcast/voxcast-api/cmd"

func main() {
	cmd.Execute()
}
