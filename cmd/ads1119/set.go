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
	setOpts.addFlags(setCmd.Flags())
	setCmd.SetHelpTemplate(setCmd.HelpTemplate() + extendedConfigHelp)
	rootCmd.AddCommand(setCmd)
}

var (
	setCmd = &cobra.Command{
		Use:     "set",
		Short:   "Write the config register",
		Long:    `Write the config register and confirm the device has accepted it.`,
		Example: "  ads1119 set --mux ain2 --gain 4 --rate 90",
		Args:    cobra.NoArgs,
		RunE:    set,
	}
	setOpts = settings{}
)

func set(cmd *cobra.Command, args []string) error {
	c, err := setOpts.config()
	if err != nil {
		return err
	}
	a, closer, err := openDevice()
	if err != nil {
		return err
	}
	defer closer()
	return a.WriteConfig(c)
}
