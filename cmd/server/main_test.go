package main

import (
	"testing"

	"meetup-web/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayZoneWithoutSystemZoneinfo(t *testing.T) {
	// 指向空目錄時只能依賴內嵌的 tzdata
	t.Setenv("ZONEINFO", t.TempDir())

	loc, err := config.DisplayConfig{Timezone: "Asia/Kolkata"}.Location()

	require.NoError(t, err)
	assert.Equal(t, "Asia/Kolkata", loc.String())
}
