package oss

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "field_report_June.webp", sanitizeFilename("field report June.webp"))
	assert.Equal(t, "a_b-c.1_.png", sanitizeFilename("a b-c.1!.png"))
}

func TestBuildObjectKey_CarriesPrefixAndStaysUnique(t *testing.T) {
	s := &OSSService{Prefix: "images"}

	k1 := s.buildObjectKey("photo.webp")
	k2 := s.buildObjectKey("photo.webp")

	assert.True(t, strings.HasPrefix(k1, "images/"))
	assert.True(t, strings.HasSuffix(k1, "photo.webp"))
	assert.NotEqual(t, k1, k2)
}

func TestPublicURLRoundTrip(t *testing.T) {
	s := &OSSService{
		Endpoint:   "https://oss-eu-west-1.aliyuncs.com",
		BucketName: "haskenrayuwa",
	}

	url := s.PublicURL("images/20240605-abc-photo.webp")
	assert.Equal(t, "https://haskenrayuwa.oss-eu-west-1.aliyuncs.com/images/20240605-abc-photo.webp", url)

	key, err := s.keyFromPublicURL(url)
	require.NoError(t, err)
	assert.Equal(t, "images/20240605-abc-photo.webp", key)
}

func TestKeyFromPublicURL_RejectsBareHost(t *testing.T) {
	s := &OSSService{}
	_, err := s.keyFromPublicURL("https://haskenrayuwa.oss-eu-west-1.aliyuncs.com/")
	require.Error(t, err)
}
