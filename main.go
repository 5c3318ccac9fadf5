package main

import "github.com/inovacc/tablr/cmd"

func main() {
	cmd.Execute()
}
