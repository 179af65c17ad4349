package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"pytt/title"
)

// Built-in corpus used when no input file is given.
var sampleLines = []string{
	"anna von hausswolff - the truth, the glow, the fall",
	"bob marley & the wailers - no woman, no cry (live)",
	"danzig - satan (from satan's sadists)",
	"tears for fears @ rule the world: the greatest hits",
	"sepultura - r.i.p. (rest in pain)",
	"göran's top secret quote & å ä ö test...",
	"the rise and fall of ziggy stardust and the spiders from mars",
	"a tribe called quest - we the people....",
}

func main() {
	file := flag.String("f", "", "File with one line per input (default: built-in corpus)")
	rounds := flag.Int("n", 100000, "Rounds over the corpus")
	everyWord := flag.Bool("e", false, "Measure Capitalize instead of Titleize")
	flag.Parse()

	lines := sampleLines
	if *file != "" {
		var err error
		lines, err = readLines(*file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
			os.Exit(1)
		}
	}
	if len(lines) == 0 {
		fmt.Fprintln(os.Stderr, "No input lines")
		os.Exit(1)
	}

	transform := title.Titleize
	name := "Titleize"
	if *everyWord {
		transform = title.Capitalize
		name = "Capitalize"
	}

	totalBytes := 0
	for _, line := range lines {
		totalBytes += len(line)
	}

	fmt.Println("TITLE ENGINE BENCHMARK")
	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("Function: %s\n", name)
	fmt.Printf("Corpus:   %d lines, %d bytes\n", len(lines), totalBytes)
	fmt.Printf("Rounds:   %d\n\n", *rounds)

	start := time.Now()
	for i := 0; i < *rounds; i++ {
		for _, line := range lines {
			transform(line)
		}
	}
	elapsed := time.Since(start)

	processed := *rounds * len(lines)
	bytes := float64(*rounds*totalBytes) / (1 << 20)

	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("RESULTS:\n")
	fmt.Printf("  Elapsed:    %v\n", elapsed)
	fmt.Printf("  Lines/sec:  %.0f\n", float64(processed)/elapsed.Seconds())
	fmt.Printf("  MB/sec:     %.1f\n", bytes/elapsed.Seconds())
	fmt.Println()

	fmt.Println("Sample output:")
	for i, line := range lines {
		if i == 3 {
			break
		}
		fmt.Printf("  %s\n", transform(line))
	}
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}
