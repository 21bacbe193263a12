package main

import "github.com/MeKo-Tech/palettize/internal/cmd"

func main() {
	cmd.Execute()
}
