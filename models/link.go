// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// DefaultBaseURL is the paste service used when only a paste ID and key are
// given.
const DefaultBaseURL = "https://paste.fitgirl-repacks.site/"

// Link identifies a paste: where to fetch it and the base-58 key from the URL
// fragment. PasteID is passed to the server untouched.
type Link struct {
	BaseURL string
	PasteID string
	Key     string
}

// ParseLink splits a paste URL of the form {base}?{pasteid}#{key}. The key is
// not decoded here.
func ParseLink(raw string) (Link, error) {
	base, info, ok := strings.Cut(strings.TrimSpace(raw), "?")
	if !ok {
		return Link{}, ErrIllFormedLink
	}
	pasteID, key, ok := strings.Cut(info, "#")
	if !ok {
		return Link{}, ErrIllFormedLink
	}

	return Link{BaseURL: base, PasteID: pasteID, Key: key}, nil
}

// NewLink builds a [Link] on [DefaultBaseURL].
func NewLink(key, pasteID string) Link {
	return Link{BaseURL: DefaultBaseURL, PasteID: pasteID, Key: key}
}

// String reassembles the paste URL.
func (l Link) String() string {
	return l.BaseURL + "?" + l.PasteID + "#" + l.Key
}
