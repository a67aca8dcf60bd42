package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServerConfigDefaults(t *testing.T) {
	var s ServerConfig

	assert.Equal(t, "pool.ntp.org", s.NTPAddress())
	assert.Equal(t, "5060", s.SIPPort())

	s = ServerConfig{NTPServer: String(""), Port: String("5080")}

	assert.Equal(t, "", s.NTPAddress())
	assert.Equal(t, "5080", s.SIPPort())
}

func TestLineLabelFallsBackToExtension(t *testing.T) {
	assert.Equal(t, "1001", UserConfig{Ext: "1001"}.LineLabel())
	assert.Equal(t, "Front desk", UserConfig{Ext: "1001", Label: "Front desk"}.LineLabel())
	assert.Equal(t, "", UserConfig{}.LineLabel())
}

func TestPhoneSettingsFlags(t *testing.T) {
	var p PhoneSettings

	assert.True(t, p.PaginationEnabled())
	assert.True(t, p.SpontaneousCallsEnabled())

	p = PhoneSettings{Pagination: String(Disabled), SpontaneousCalls: String("Enabled")}

	assert.False(t, p.PaginationEnabled())
	assert.False(t, p.SpontaneousCallsEnabled())
}
