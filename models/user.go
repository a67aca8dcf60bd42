package models

// RosterUser - an entry of the user pool kept by the browser
type RosterUser struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Ext      string `json:"ext"`
	Password string `json:"password"`
	Label    string `json:"label"`
}
