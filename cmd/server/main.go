package main

import (
	"github.com/nvquang/product-api/cmd"
)

func main() {
	cmd.Execute()
}
