// Package banner supplies the boot banner: an operator-provided logo file
// when one exists, otherwise the built-in Ibis logo. It never fails.
package banner

import (
	_ "embed"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
)

//go:embed logo.txt
var defaultLogo string

// Logo returns the contents of the override file at overridePath, or the
// built-in logo if the path is empty or the file can't be read.
func Logo(fsys afero.Fs, overridePath string) string {
	if overridePath == "" {
		return defaultLogo
	}
	contents, err := afero.ReadFile(fsys, overridePath)
	if err != nil {
		return defaultLogo
	}
	return string(contents)
}

// Fprint writes the boot banner: the logo followed by a version line.
func Fprint(w io.Writer, fsys afero.Fs, overridePath, version string) {
	logo := Logo(fsys, overridePath)
	fmt.Fprint(w, logo)
	if !strings.HasSuffix(logo, "\n") {
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "Ibis userland %s\n", version)
}
