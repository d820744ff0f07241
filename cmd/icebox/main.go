// Package main provides the icebox CLI: a refrigerator and cuisine
// assistant driven through a chat-style conversation.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
