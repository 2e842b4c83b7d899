// SPDX-License-Identifier: MPL-2.0

// Command powcalc raises positive integers to integer powers.
package main

import cmd "github.com/powcalc/powcalc/cmd/powcalc"

func main() {
	cmd.Execute()
}
