// main is the entry point for the sunseries CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/tgunes/sunseries/cmd"
)

func main() {
	// A local .env can hold SUNSERIES_* variables for viper to pick up.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
