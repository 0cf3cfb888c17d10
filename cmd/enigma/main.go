// Package main provides the enigma CLI, a rotor cipher machine simulator.
package main

func main() {
	Execute()
}
