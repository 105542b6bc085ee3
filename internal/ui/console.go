package ui

import (
	"fmt"
	"io"
	"math"

	"github.com/fatih/color"

	"github.com/Amr-9/CKBHunter/pkg/generator"
)

var (
	errorColor = color.New(color.FgRed, color.Bold)
	infoColor  = color.New(color.FgCyan)
	keyColor   = color.New(color.FgYellow)
	addrColor  = color.New(color.FgGreen, color.Bold)
)

// Console prints search output. Results and progress go to out, usage and
// validation errors to errOut.
type Console struct {
	out    io.Writer
	errOut io.Writer
}

// NewConsole creates a console writing to the given streams.
func NewConsole(out, errOut io.Writer) *Console {
	return &Console{out: out, errOut: errOut}
}

// PrintUsage prints the command line synopsis.
func (c *Console) PrintUsage(name string) {
	fmt.Fprintf(c.errOut, "usage: %s <the address prefix to match>\n", name)
}

// PrintError reports a fatal usage or validation error.
func (c *Console) PrintError(err error) {
	errorColor.Fprintln(c.errOut, err.Error())
}

// PrintSearchInfo displays the search target before workers start.
func (c *Console) PrintSearchInfo(prefix string, workers int, expected float64) {
	fmt.Fprintf(c.out, "checking prefix %s\n", prefix)
	infoColor.Fprintf(c.out, "workers: %d\tdifficulty(est): 1/%s\n", workers, formatSpace(expected*2))
}

// formatSpace prints a search space size, falling back to scientific
// notation once it no longer fits in a uint64.
func formatSpace(n float64) string {
	if n >= math.MaxUint64 {
		return fmt.Sprintf("%.3g", n)
	}
	return FormatNumber(uint64(n))
}

// Progress prints one periodic progress line.
func (c *Console) Progress(p generator.Progress) {
	fmt.Fprintf(c.out, "count: %d\telapsed: %.2fmin\tspeed: %.2f/s\tprogress(est): %.2f%%\tleft(est): %.2fmin\n",
		p.Attempts,
		p.ElapsedSecs/60,
		p.HashRate,
		p.Percent,
		p.LeftSecs/60)
}

// Found prints the result block.
func (c *Console) Found(r generator.Result) {
	fmt.Fprintln(c.out, "result:")
	fmt.Fprintf(c.out, "privkey:\t%s\n", keyColor.Sprint(r.PrivateKey))
	fmt.Fprintf(c.out, "address:\t%s\n", addrColor.Sprint(r.Address))
}

// PrintAddress prints the address derived from a given key.
func (c *Console) PrintAddress(privKeyHex, address string) {
	fmt.Fprintf(c.out, "privkey:\t%s\n", keyColor.Sprint(privKeyHex))
	fmt.Fprintf(c.out, "address:\t%s\n", addrColor.Sprint(address))
}

// FormatNumber adds commas to large numbers
func FormatNumber(n uint64) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	s := fmt.Sprintf("%d", n)
	result := make([]byte, 0, len(s)+(len(s)-1)/3)
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, byte(c))
	}
	return string(result)
}
