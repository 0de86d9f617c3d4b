// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

const gravatarBaseURL = "https://www.gravatar.com/avatar/"

// GravatarURL returns the Gravatar image URL of email. The address is
// trimmed and lower-cased before hashing, as Gravatar requires.
func GravatarURL(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return gravatarBaseURL + hex.EncodeToString(sum[:])
}
