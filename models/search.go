package models

// SearchParams is the transient availability query. Location is informational
// for display and does not by itself narrow the result set; Type is an
// optional vehicle-category filter.
type SearchParams struct {
	Location  string      `json:"location"`
	StartDate string      `json:"startDate"` // "YYYY-MM-DD"
	EndDate   string      `json:"endDate"`   // "YYYY-MM-DD"
	Type      VehicleType `json:"vehicleType,omitempty"`
}

// InventoryQuery narrows the admin catalog view. Text matches make, model and
// license plate case-insensitively; the remaining filters are exact matches,
// with "" or "All" meaning no constraint.
type InventoryQuery struct {
	Text     string `json:"text"`
	Type     string `json:"type"`
	Status   string `json:"status"`
	Location string `json:"location"`
}
