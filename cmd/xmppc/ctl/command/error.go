// Copyright 2023 The jackal Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package command

import (
	"fmt"
	"os"
)

const (
	// ExitSuccess is the exit code of a successful command.
	ExitSuccess = iota

	// ExitError is the generic failure exit code.
	ExitError

	// ExitBadConnection is returned when the server could not be reached or negotiated with.
	ExitBadConnection

	// ExitBadArgs is returned on invalid command arguments.
	ExitBadArgs = 128
)

// ExitWithError prints err to standard error and exits with code.
func ExitWithError(code int, err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(code)
}
