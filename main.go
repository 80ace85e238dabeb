package main

import "appinfra/cmd"

func main() {
	cmd.Execute()
}
