// Command ibis is the minimal Ibis userland in one multi-call binary:
// installed as init it supervises the system lifecycle, installed (or
// linked) as ibish it is the interactive shell.
package main

import (
	"os"
	"path/filepath"

	"github.com/ibis-os/userland/cmd"
)

func main() {
	if filepath.Base(os.Args[0]) == "ibish" {
		cmd.ExecuteShell()
		return
	}
	cmd.Execute()
}
