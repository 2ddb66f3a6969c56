// SPDX-License-Identifier: MIT
//
// Copyright © 2026 Kent Gibson <warthog618@gmail.com>.

//go:build linux
// +build linux

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Read the status register",
	Args:  cobra.NoArgs,
	RunE:  status,
}

func status(cmd *cobra.Command, args []string) error {
	a, closer, err := openDevice()
	if err != nil {
		return err
	}
	defer closer()
	s, err := a.ReadStatus()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), s)
	return nil
}
