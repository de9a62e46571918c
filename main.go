package main

import (
	"github.com/minatoaquaMK2/vibe-kanban/cmd"
)

func main() {
	cmd.Execute()
}
