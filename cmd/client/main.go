package main

import "escuela/cmd/client/cmd"

func main() {
	cmd.Execute()
}
