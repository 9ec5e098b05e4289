package commands

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"

	"github.com/tidominer/bankino/internal/buildinfo"
)

var bannerColor = color.New(color.FgCyan, color.Bold)

// printBanner draws the boxed program title. It is console decoration only
// and never part of the exported report.
func printBanner(w io.Writer) {
	title := "Bankino Financial Assistant " + buildinfo.Version
	bar := strings.Repeat("═", utf8.RuneCountInString(title)+6)

	fmt.Fprintln(w)
	bannerColor.Fprintln(w, "╔"+bar+"╗")
	bannerColor.Fprintln(w, "║   "+title+"   ║")
	bannerColor.Fprintln(w, "╚"+bar+"╝")
	fmt.Fprintln(w)
}
