package dto

// LocationCount is one tally bucket for the dashboard breakdown charts.
type LocationCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

type DashboardStatsResponse struct {
	TotalProfiles  int64           `json:"total_profiles"`
	TotalEnrolled  int64           `json:"total_enrolled"`
	ByProvince     []LocationCount `json:"by_province"`
	ByMunicipality []LocationCount `json:"by_municipality"`
	ByBarangay     []LocationCount `json:"by_barangay"`
}
