package resource

// ChannelHeaders are the columns of the channels table.
var ChannelHeaders = []string{"Name", "Visibility", "Invite Code"}

// ExtractChannels normalizes a channel list response. A lone object is
// treated as a list of one.
func ExtractChannels(payload any) []Record {
	return listOrSingle(payload, "channels", "items", "results", "data")
}

// ChannelRow is one line of the channels table.
func ChannelRow(c Record) []string {
	return []string{c.String("name"), c.String("visibility"), c.String("invite_code")}
}

// ChannelDetail is the key/value view of a single channel.
func ChannelDetail(c Record) [][]string {
	return [][]string{
		{"name", c.String("name")},
		{"visibility", c.String("visibility")},
		{"invite_code", c.String("invite_code")},
		{"description", c.String("description")},
	}
}

// ChannelRequest is the body of POST /api/v1/channels.
type ChannelRequest struct {
	Name       string `json:"name"`
	Visibility string `json:"visibility"`
	InviteCode string `json:"invite_code,omitempty"`
}

// Validate checks the request and lowercases the visibility in place.
func (r *ChannelRequest) Validate() error {
	if err := requireText("--name", r.Name); err != nil {
		return err
	}
	v, err := NormalizeVisibility("--visibility", r.Visibility)
	if err != nil {
		return err
	}
	r.Visibility = v
	return nil
}
