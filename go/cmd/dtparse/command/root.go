/*
Copyright 2019 The Vitess Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package command holds the dtparse CLI's cobra command tree.
package command

import (
	"github.com/spf13/cobra"

	"github.com/icu4g/icu4g/go/vt/log"
)

var Root = &cobra.Command{
	Use:   "dtparse",
	Short: "dtparse parses date/time strings against ICU/JDK-style patterns.",
	Long: "`dtparse` parses a date/time string against a pattern string (or a standard-pattern\n" +
		"index) and prints the resolved calendar fields.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return log.Init(cmd.Flags())
	},
}

func init() {
	log.RegisterFlags(Root.PersistentFlags())

	Root.AddCommand(parseCmd)
	Root.AddCommand(validateCmd)
}
