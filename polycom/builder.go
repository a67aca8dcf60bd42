package polycom

import (
	"fmt"
	"strconv"

	"polyconf/models"
)

// element tags, in the order they appear in a document
const (
	TagRoot       = "polycomConfig"
	TagPagination = "up"
	TagSNTP       = "tcpIpApp.sntp"
	TagReg        = "reg"
	TagAttendant  = "attendant"
)

// fixed values the builder never takes from the payload
const (
	GMTOffset     = "3600"
	Transport     = "UDPOnly"
	LineKeys      = "1"
	AttendantReg  = "1"
	AttendantType = "automata"
	ContentType   = "application/xml"
	fallbackName  = "polycom"
)

// Build - lays out the provisioning tree for one phone
func Build(server models.ServerConfig, user models.UserConfig, attendants []models.Attendant, settings models.PhoneSettings) *Document {

	root := NewElement(TagRoot)

	root.SubElement(TagPagination,
		Attr{"up.Pagination.enabled", flag(settings.PaginationEnabled())},
	)

	root.SubElement(TagSNTP,
		Attr{"tcpIpApp.sntp.address", server.NTPAddress()},
		Attr{"tcpIpApp.sntp.gmtOffset", GMTOffset},
	)

	// main line
	root.SubElement(TagReg,
		Attr{"reg.1.displayName", user.Name},
		Attr{"reg.1.label", user.LineLabel()},
		Attr{"reg.1.address", user.Ext},
		Attr{"reg.1.thirdPartyName", user.Ext},
		Attr{"reg.1.auth.userId", user.Ext},
		Attr{"reg.1.auth.password", user.Password},
		Attr{"reg.1.server.1.address", server.IP},
		Attr{"reg.1.server.1.port", server.SIPPort()},
		Attr{"reg.1.server.1.transport", Transport},
		Attr{"reg.1.lineKeys", LineKeys},
	)

	// BLF keys
	att := root.SubElement(TagAttendant,
		Attr{"attendant.reg", AttendantReg},
		Attr{"attendant.behaviors.display.spontaneousCallAppearances.normal", flag(settings.SpontaneousCallsEnabled())},
	)

	for i, a := range attendants {
		prefix := ResourceKey(i + 1)
		att.Set(prefix+".address", a.Ext)
		att.Set(prefix+".label", a.Name)
		att.Set(prefix+".type", AttendantType)
	}

	return &Document{Root: root}
}

// ResourceKey - attribute prefix of the idx-th (1-based) attendant
func ResourceKey(idx int) string {
	return "attendant.resourceList." + strconv.Itoa(idx)
}

// FileName - <ext>.cfg, polycom.cfg when the extension is empty
func FileName(ext string) string {
	if ext == "" {
		ext = fallbackName
	}
	return ext + ".cfg"
}

// Render - builds and serializes the document for a request
func Render(req *models.GenerateRequest) (*models.File, error) {

	if req == nil {
		req = new(models.GenerateRequest)
	}

	doc := Build(req.ServerConfig, req.UserConfig, req.Attendants, req.PhoneSettings)

	body, err := doc.Marshal()
	if err != nil {
		return nil, fmt.Errorf("cannot serialize config for %q: %w", req.UserConfig.Ext, err)
	}

	return &models.File{
		Name:        FileName(req.UserConfig.Ext),
		ContentType: ContentType,
		Body:        body,
	}, nil
}

func flag(enabled bool) string {
	if enabled {
		return "1"
	}
	return "0"
}
