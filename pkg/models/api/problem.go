package api

// Problem is the RFC 9457 problem-details error envelope. Detail strings
// are always safe to display; internal state never crosses this boundary.
type Problem struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
}
