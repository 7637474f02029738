package dashboard

import "encoding/json"

// KPIsDTO holds the headline counters. Revenue is a fixed two-decimal string.
type KPIsDTO struct {
	TotalOrders    int64  `json:"totalOrders"`
	TotalRevenue   string `json:"totalRevenue"`
	TotalProducts  int64  `json:"totalProducts"`
	TotalCustomers int64  `json:"totalCustomers"`
}

// MonthlySalesDTO is one chart point; revenue is emitted as a JSON number.
type MonthlySalesDTO struct {
	Month   string      `json:"month"`
	Revenue json.Number `json:"revenue"`
}

type StatusCountDTO struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}
