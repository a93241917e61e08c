package models

// DashboardStats are the counters shown on the console home page
type DashboardStats struct {
	TotalCriancas      int64 `json:"totalCriancas"`
	TotalResponsaveis  int64 `json:"totalResponsaveis"`
	TotalTios          int64 `json:"totalTios"`
	CultosHoje         int64 `json:"cultosHoje"`
	CheckInsPendentes  int64 `json:"checkInsPendentes"`
	CheckOutsPendentes int64 `json:"checkOutsPendentes"`
}
