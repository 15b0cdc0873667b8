package main

import "github.com/donerkebap13/decsgen/cmd/decsgen/internal"

func main() {
	internal.Execute()
}
