package cli

import (
	"fmt"
	"io"

	"github.com/common-nighthawk/go-figure"
)

func printBanner(w io.Writer, name string) {
	fig := figure.NewFigure(name, "cybermedium", true)
	fmt.Fprintln(w, fig.String())
}
