package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeHTML(t *testing.T) {
	assert.Equal(t, "&lt;script&gt;alert(&quot;x&quot;)&lt;/script&gt;", EscapeHTML(`<script>alert("x")</script>`))
	assert.Equal(t, "Tom &amp; Jerry&#039;s", EscapeHTML("Tom & Jerry's"))
	assert.Equal(t, "plain text", EscapeHTML("plain text"))
	assert.Equal(t, "", EscapeHTML(""))
}
