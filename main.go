package main

import "github.com/centpub/centpub/cmd/root"

func main() {
	root.Execute()
}
