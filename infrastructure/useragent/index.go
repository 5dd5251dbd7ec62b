package useragent

import "github.com/mileusna/useragent"

type UserAgent struct {
	Bot       bool
	Mobile    bool
	OS        string
	OSVersion string
	Device    string
	Name      string
}

func ParseUserAgent(userAgent string) *UserAgent {
	parsed := useragent.Parse(userAgent)
	return &UserAgent{
		Bot:       parsed.Bot,
		Mobile:    parsed.Mobile,
		OS:        parsed.OS,
		OSVersion: parsed.OSVersion,
		Device:    parsed.Device,
		Name:      parsed.Name,
	}
}

// Supported rejects empty and bot agents.
func (ua *UserAgent) Supported() bool {
	return ua != nil && !ua.Bot && ua.Name != ""
}
