package main

import (
	"os"

	"gitlab.com/dirk.krummacker/contacts-assistant/cmd/assistant/commands"
)

// Usage example on the command line:
// > go run main.go
// > PORT=8080 GIN_MODE=release GIN_LOGGING=OFF go run main.go serve
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
