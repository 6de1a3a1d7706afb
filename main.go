package main

import "alisto_backend/cmd"

func main() {
	cmd.Execute()
}
