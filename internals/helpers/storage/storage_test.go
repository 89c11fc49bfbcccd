package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeObjectPath_KeepsSeparators(t *testing.T) {
	assert.Equal(t,
		"9b2e1c2a-0000-0000-0000-000000000000/1712345678.webp",
		escapeObjectPath("9b2e1c2a-0000-0000-0000-000000000000/1712345678.webp"))
	assert.Equal(t, "a%20b/c.webp", escapeObjectPath("a b/c.webp"))
}

func TestDeleteCourtAvatarByURL_RejectsForeignURL(t *testing.T) {
	err := DeleteCourtAvatarByURL("https://example.com/storage/v1/object/public/other-bucket/x.webp")
	assert.Error(t, err)
}
