// SPDX-License-Identifier: MIT
//
// Copyright © 2026 Kent Gibson <warthog618@gmail.com>.

//go:build linux
// +build linux

package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(resetCmd)
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the device to its power-on state",
	Args:  cobra.NoArgs,
	RunE:  reset,
}

// The device config is lost, so subsequent reads should rewrite it.
func reset(cmd *cobra.Command, args []string) error {
	a, closer, err := openDevice()
	if err != nil {
		return err
	}
	defer closer()
	return a.Reset()
}
