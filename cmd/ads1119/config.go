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
	configCmd.Flags().BoolVarP(&configOpts.Raw, "raw", "R", false, "display the raw register value")
	rootCmd.AddCommand(configCmd)
}

var (
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Read the config register",
		Args:  cobra.NoArgs,
		RunE:  config,
	}
	configOpts = struct {
		Raw bool
	}{}
)

func config(cmd *cobra.Command, args []string) error {
	a, closer, err := openDevice()
	if err != nil {
		return err
	}
	defer closer()
	c, err := a.ReadConfig()
	if err != nil {
		return err
	}
	if configOpts.Raw {
		fmt.Fprintf(cmd.OutOrStdout(), "0x%02x\n", c.Encode())
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), c)
	return nil
}
