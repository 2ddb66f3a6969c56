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
	rootCmd.AddCommand(startCmd)
}

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start or restart a conversion",
	Long: `Start a conversion in single-shot mode, or restart the conversion
sequence in continuous mode.`,
	Args: cobra.NoArgs,
	RunE: start,
}

func start(cmd *cobra.Command, args []string) error {
	a, closer, err := openDevice()
	if err != nil {
		return err
	}
	defer closer()
	return a.StartSync()
}
