package main

import "github.com/DenysFlnk/playerroster/internal/cli"

func main() {
	cli.Execute()
}
