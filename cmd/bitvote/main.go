// Package main provides the bitvote command line interface.
//
// bitvote decodes files made of 8-byte redundancy groups: each group
// carries seven copies of one byte plus a reserved header byte, and
// decodes to the bitwise majority of the copies.
package main

import (
	"fmt"
	"os"
	"strings"

	"bitvote"
)

func printVersion() {
	fmt.Printf("bitvote %s (Go)\n", bitvote.Version)
}

func printHelp(progName string) {
	fmt.Printf("bitvote %s - best-of-seven majority-vote byte decoder\n", bitvote.Version)
	fmt.Println()
	fmt.Println("Each 8-byte input group decodes to one output byte: bytes 1-7 of")
	fmt.Println("the group vote bit by bit, byte 0 is reserved and ignored.")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s <input>\n", progName)
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -h, --help     Show this help message")
	fmt.Println("  -v, --version  Show version information")
	fmt.Println()
	fmt.Println("Arguments:")
	fmt.Println("  input          Encoded input file (size must be a multiple of 8)")
	fmt.Println()
	fmt.Println("Output:")
	fmt.Println("  <input>.dec (or <base>.dec if input ends in .enc)")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Printf("  %s firmware.enc        # writes firmware.dec\n", progName)
}

func makeOutputFilename(input string) string {
	if strings.HasSuffix(input, ".enc") {
		return strings.TrimSuffix(input, ".enc") + ".dec"
	}
	return input + ".dec"
}

func doDecode(inputPath string) int {
	// Read input file
	inputData, err := os.ReadFile(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Cannot open input file: %s\n", inputPath)
		return 1
	}

	if len(inputData) == 0 {
		fmt.Fprintln(os.Stderr, "Error: Input file is empty")
		return 1
	}

	if len(inputData)%bitvote.GroupSize != 0 {
		fmt.Fprintf(os.Stderr, "Error: Input size (%d) not divisible by group size (%d)\n",
			len(inputData), bitvote.GroupSize)
		return 1
	}

	// Decode
	outputData, err := bitvote.DecodeAll(inputData)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Decoding failed: %v\n", err)
		return 1
	}

	// Write output
	outputPath := makeOutputFilename(inputPath)
	err = os.WriteFile(outputPath, outputData, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Cannot write output file: %s\n", outputPath)
		return 1
	}

	// Print summary
	numGroups := len(inputData) / bitvote.GroupSize
	fmt.Printf("Input:   %s (%d bytes, %d groups)\n", inputPath, len(inputData), numGroups)
	fmt.Printf("Output:  %s (%d bytes)\n", outputPath, len(outputData))

	return 0
}

func main() {
	args := os.Args
	progName := args[0]

	// Check for help flag
	if len(args) < 2 || args[1] == "-h" || args[1] == "--help" {
		printHelp(progName)
		if len(args) < 2 {
			os.Exit(1)
		}
		os.Exit(0)
	}

	// Check for version flag
	if args[1] == "-v" || args[1] == "--version" {
		printVersion()
		os.Exit(0)
	}

	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "Error: Decode requires exactly 1 argument")
		fmt.Fprintf(os.Stderr, "Usage: %s <input>\n", progName)
		os.Exit(1)
	}

	os.Exit(doDecode(args[1]))
}
