package main

import "github.com/masmgr/gitlanes/cmd"

func main() {
	cmd.Run()
}
