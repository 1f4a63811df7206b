// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// gentables generates the diacritic fold table used by strnat. The table
// must be regenerated if this code is changed (`go generate`).
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"unicode"
	"unicode/utf8"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/term"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/unicode/rangetable"
)

func init() {
	log.SetPrefix("gentables: ")
	log.SetFlags(log.Lshortfile)
	log.SetOutput(os.Stdout) // use stdout instead of stderr
}

// Scanned rune range: Latin-1 Supplement and Latin Extended-A. Diacritics
// outside this range (Latin Extended Additional, free-standing combining
// sequences) are outside the supported repertoire.
const (
	scanMin = 0x0080
	scanMax = 0x017F
)

// baseLetters are the plain ASCII letters the table is allowed to fold to.
var baseLetters = rangetable.New(
	'A', 'C', 'E', 'I', 'N', 'O', 'U',
	'a', 'c', 'e', 'i', 'n', 'o', 'u',
)

// ligatureFolds are letters in the scanned range with no canonical
// decomposition that still have an accepted plain equivalent.
var ligatureFolds = map[rune]rune{
	'Æ': 'A', 'æ': 'a',
	'Ø': 'O', 'ø': 'o',
	'Œ': 'O', 'œ': 'o',
}

// stripMarks removes combining diacritical marks: NFD, drop Mn, NFC.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func newProgressBar(n int) *progressbar.ProgressBar {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return progressbar.DefaultSilent(int64(n))
	}
	return progressbar.Default(int64(n), "scanning")
}

// buildFolds maps every letter in the scanned range whose decomposition is
// a single allowed ASCII letter plus combining marks to that letter, then
// merges in the ligature exceptions.
func buildFolds() map[rune]rune {
	folds := make(map[rune]rune)
	bar := newProgressBar(scanMax - scanMin + 1)
	for r := rune(scanMin); r <= scanMax; r++ {
		bar.Add(1)
		plain, _, err := transform.String(stripMarks, string(r))
		if err != nil || plain == string(r) {
			continue
		}
		p, size := utf8.DecodeRuneInString(plain)
		if size != len(plain) || !unicode.Is(baseLetters, p) {
			continue
		}
		folds[r] = p
	}
	for r, p := range ligatureFolds {
		folds[r] = p
	}
	return folds
}

func writeTables(w *bytes.Buffer, folds map[rune]rune) {
	keys := maps.Keys(folds)
	slices.Sort(keys)
	lo, hi := keys[0], keys[len(keys)-1]

	fmt.Fprintf(w, "// Code generated by \"gentables\"; DO NOT EDIT.\n\n")
	fmt.Fprintf(w, "package strnat\n\n")
	fmt.Fprintf(w, "// Bounds of the diacritic fold table. Runes outside [_foldMin, _foldMax]\n")
	fmt.Fprintf(w, "// never have a mapping.\n")
	fmt.Fprintf(w, "const (\n")
	fmt.Fprintf(w, "\t_foldMin = 0x%04X // %q\n", lo, lo)
	fmt.Fprintf(w, "\t_foldMax = 0x%04X // %q\n", hi, hi)
	fmt.Fprintf(w, ")\n\n")
	fmt.Fprintf(w, "// _fold maps accented Latin letters to their plain ASCII equivalents,\n")
	fmt.Fprintf(w, "// indexed by rune offset from _foldMin. A zero entry means the rune has\n")
	fmt.Fprintf(w, "// no mapping and is identity-folded.\n")
	fmt.Fprintf(w, "var _fold = [_foldMax - _foldMin + 1]byte{\n")
	for _, r := range keys {
		fmt.Fprintf(w, "\t0x%04X - _foldMin: %q, // %q\n", r, folds[r], r)
	}
	fmt.Fprintf(w, "}\n")
}

func main() {
	dryRun := flag.Bool("dry-run", false, "print the generated table instead of writing it")
	output := flag.String("o", "tables.go", "output file name")
	flag.Parse()

	folds := buildFolds()
	if len(folds) == 0 {
		log.Fatal("generated an empty fold table")
	}

	var buf bytes.Buffer
	writeTables(&buf, folds)
	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("formatting generated table: %v", err)
	}
	if *dryRun {
		os.Stdout.Write(src)
		return
	}
	if err := os.WriteFile(*output, src, 0644); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s: %d runes", *output, len(folds))
}
