package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/braheezy/fixed-pi/pkg/fixed"
)

const defaultOperand = 100

func main() {
	os.Exit(run(os.Args, os.Stdout))
}

// run prints multiplyByPi for the optional operand in args[1] and returns the
// process exit status. The status never carries the computed value.
func run(args []string, out io.Writer) int {
	// Handle command line arguments
	if len(args) > 2 {
		fmt.Fprintf(out, "Usage: %s [operand]\n", args[0])
		return 1
	}

	number := int32(defaultOperand)
	if len(args) == 2 {
		n, err := parseOperand(args[1])
		if err != nil {
			log.Printf("Error: %v", err)
			fmt.Fprintf(out, "Usage: %s [operand]\n", args[0])
			return 1
		}
		number = n
	}

	fmt.Fprintf(out, "multiplyByPi(%d) = %d (pi ≈ %f at %d fractional bits)\n",
		number, fixed.MultiplyByPi(number), fixed.Float(fixed.Pi, fixed.Point), fixed.Point)
	return 0
}

func parseOperand(s string) (int32, error) {
	n, err := strconv.ParseInt(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("operand %q is not a 32-bit integer: %w", s, err)
	}
	return int32(n), nil
}
