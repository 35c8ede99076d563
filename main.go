package main

import (
	"embed"

	"github.com/larahenke/giro/cmd"
)

//go:embed migrations
var migrationsFS embed.FS

func main() {
	cmd.Execute(migrationsFS)
}
