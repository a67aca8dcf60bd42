package models

// defaults used when a key is absent from the payload
const (
	DefaultNTPServer = "pool.ntp.org"
	DefaultSIPPort   = "5060"
	Enabled          = "enabled"
	Disabled         = "disabled"
)

// ServerConfig - call server and time source the phone registers against
type ServerConfig struct {
	NTPServer *string `json:"ntp_server"`
	IP        string  `json:"ip"`
	Port      *string `json:"port"`
}

// NTPAddress - configured NTP server, pool.ntp.org when absent
func (s ServerConfig) NTPAddress() string {
	return valueOr(s.NTPServer, DefaultNTPServer)
}

// SIPPort - configured SIP port, 5060 when absent
func (s ServerConfig) SIPPort() string {
	return valueOr(s.Port, DefaultSIPPort)
}

// UserConfig - the line registered on the phone
type UserConfig struct {
	Name     string `json:"name"`
	Ext      string `json:"ext"`
	Password string `json:"password"`
	Label    string `json:"label"`
}

// LineLabel - label if set, otherwise the extension
func (u UserConfig) LineLabel() string {
	if u.Label != "" {
		return u.Label
	}
	return u.Ext
}

// Attendant - one BLF resource list entry
type Attendant struct {
	Name string `json:"name"`
	Ext  string `json:"ext"`
}

// PhoneSettings - display toggles, "enabled" or "disabled"
type PhoneSettings struct {
	Pagination       *string `json:"pagination"`
	SpontaneousCalls *string `json:"spontaneous_calls"`
}

// PaginationEnabled -
func (p PhoneSettings) PaginationEnabled() bool {
	return valueOr(p.Pagination, Enabled) == Enabled
}

// SpontaneousCallsEnabled -
func (p PhoneSettings) SpontaneousCallsEnabled() bool {
	return valueOr(p.SpontaneousCalls, Enabled) == Enabled
}

// GenerateRequest - payload accepted by /generate
type GenerateRequest struct {
	ServerConfig  ServerConfig  `json:"server_config"`
	UserConfig    UserConfig    `json:"user_config"`
	Attendants    []Attendant   `json:"attendants"`
	PhoneSettings PhoneSettings `json:"phone_settings"`
}

func valueOr(p *string, fallback string) string {
	if p == nil {
		return fallback
	}
	return *p
}

// String - helper for building optional fields
func String(s string) *string {
	return &s
}
