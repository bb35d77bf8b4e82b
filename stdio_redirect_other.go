//go:build !unix

package main

import "os"

// Without dup2 only Go-level writes are captured; runtime panics still reach
// the original stderr.
func redirectStdIO(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	os.Stdout = f
	os.Stderr = f
	return nil
}
