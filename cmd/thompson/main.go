// Command thompson compiles regex syntax trees into Thompson NFAs, prints and
// simulates them, and generates standalone Go matchers.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
