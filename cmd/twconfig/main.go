// Command twconfig inspects, validates and exports the Tailwind
// configuration descriptor.
package main

import (
	"os"

	"github.com/agiangrant/twconfig/cmd/twconfig/commands"
)

const version = "0.1.0"

func main() {
	os.Exit(commands.Execute(version))
}
