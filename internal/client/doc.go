// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the decryptor command-line application.
//
// It turns the command-line input (paste URLs, a key and ID pair, or a URL on
// the clipboard) into links, hands them to the download service and prints a
// report of what was saved, skipped or failed.
package client
