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

package command

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/icu4g/icu4g/go/dtparse"
	"github.com/icu4g/icu4g/go/vt/utils"
)

var validatePattern string

var validateCmd = &cobra.Command{
	Use:   "validate <text>",
	Short: "Report whether a date/time string strictly round-trips against a pattern, without printing the resolved fields.",
	Args:  cobra.ExactArgs(1),
	RunE:  commandValidate,
}

func init() {
	utils.SetFlagStringVar(validateCmd.Flags(), &validatePattern, "pattern", "yyyy-MM-dd", "The ICU/JDK-style pattern to validate against.")
}

func commandValidate(cmd *cobra.Command, args []string) error {
	p := dtparse.NewPattern(validatePattern, nil)

	var t time.Time
	n, err := p.Parse(args[0], dtparse.NewStdDateValue(&t), dtparse.Options{Validate: true})
	if err != nil {
		return err
	}
	if n == 0 || n != len(args[0]) {
		fmt.Printf("invalid: %q does not strictly round-trip against %q\n", args[0], validatePattern)
		return nil
	}

	fmt.Printf("valid: %q\n", args[0])
	return nil
}
