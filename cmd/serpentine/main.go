// Command serpentine is an interactive roster builder that rolls ability
// scores and deals them out to players in snake-draft order.
package main

import (
	"github.com/spf13/cobra"
)

const (
	releaseVersion = "0.1.0"
)

func main() {
	cobra.CheckErr(newRootCmd().Execute())
}
