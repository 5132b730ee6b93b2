package main

import "github.com/gospectral/chebadv/cmd"

func main() {
	cmd.Execute()
}
