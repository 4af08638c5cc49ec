// devps lists processes and applications on the target device.
package main

import (
	"os"

	"github.com/pranshuparmar/devps/internal/app"
)

func main() {
	os.Exit(app.Execute())
}
