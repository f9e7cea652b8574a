package main

import exit "os"

type runner struct{}

func (runner) Exit(int) {}

func main() {
	r := runner{}
	r.Exit(1)
	exit.Exit(3) // want "direct os.Exit call in main function"
}
