package main

import (
	"context"

	"marriagemap/cmd/marriagemap/commands"
)

func main() {
	commands.ExecuteContext(context.Background())
}
