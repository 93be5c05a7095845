// SPDX-License-Identifier: Apache-2.0

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI flows and the server adapter into a single
// process lifecycle: authenticate, run the habit screens, and start over
// on logout.
package client
