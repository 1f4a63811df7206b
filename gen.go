//go:build gen
// +build gen

package main

import (
	"log"
	"os"
	"os/exec"
)

// Regenerates tables.go. Run from the module root via `go generate`.
func main() {
	log.SetPrefix("gen: ")
	log.SetFlags(log.Lshortfile)

	args := append([]string{"run", "./internal/gentables"}, os.Args[1:]...)
	cmd := exec.Command("go", args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		log.Fatalf("error running command %q: %v", cmd.Args, err)
	}
}
