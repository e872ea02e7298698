package main

import (
	"carousel/cmd"
)

func main() {
	cmd.Execute()
}
