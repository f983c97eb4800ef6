package main

import (
	"github.com/hybris-mobian/changelog-go/cmd"
)

func main() {
	cmd.Run()
}
