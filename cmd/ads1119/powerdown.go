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
	rootCmd.AddCommand(powerdownCmd)
}

var powerdownCmd = &cobra.Command{
	Use:   "powerdown",
	Short: "Place the device in power-down mode",
	Args:  cobra.NoArgs,
	RunE:  powerdown,
}

func powerdown(cmd *cobra.Command, args []string) error {
	a, closer, err := openDevice()
	if err != nil {
		return err
	}
	defer closer()
	return a.PowerDown()
}
