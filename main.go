package main

import (
	"github.com/go-home-admin/clientgen/console"
)

func main() {
	console.NewKernel().Run()
}
