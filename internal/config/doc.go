// SPDX-License-Identifier: Apache-2.0

// Package config loads and merges the habit-keeper configuration from
// environment variables, command-line flags, and an optional JSON file.
//
// Sources are merged in priority order (earlier sources win for non-zero
// fields): environment → flags → JSON file. The merged result is validated
// before use, so the rest of the application never reads ambient state; all
// settings are injected explicitly through constructors.
package config
