// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGravatarURL(t *testing.T) {
	// md5("myemailaddress@example.com") from the Gravatar documentation
	want := "https://www.gravatar.com/avatar/0bc83cb571cd1c50ba6f3e8a78ef1346"

	assert.Equal(t, want, GravatarURL("MyEmailAddress@example.com "))
	assert.Equal(t, want, GravatarURL("myemailaddress@example.com"))
	assert.NotEqual(t, want, GravatarURL("other@example.com"))
}
