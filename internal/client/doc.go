// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI, the vault session, the clipboard and the
// auto-lock worker into a single process lifecycle. Leaving the program
// always locks the vault.
package client
