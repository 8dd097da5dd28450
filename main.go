package main

import "github.com/denis-bt/sync-core-visualization/internal/cmd"

func main() {
	cmd.Execute()
}
