// SPDX-License-Identifier: MPL-2.0

package main

import cmd "yangdomino/cmd/yangdomino"

func main() {
	cmd.Execute()
}
