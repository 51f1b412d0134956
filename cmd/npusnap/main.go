/*
Copyright © 2025 LJ Wobker
SPDX-License-Identifier: Apache-2.0
*/
package main

import "github.com/ljwobker/npusnap/pkg/cli"

func main() {
	cli.Execute()
}
