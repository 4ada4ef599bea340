package main

import "customer-importer/cmd"

func main() {
	cmd.Execute()
}
