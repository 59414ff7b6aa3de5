package model

// Page is the Spring-style paged list envelope used by the list endpoints.
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Number        int   `json:"number"`
	Size          int   `json:"size"`
}

// DashboardStats — агрегаты для дашборда.
type DashboardStats struct {
	TotalClients      int64   `json:"totalClients"`
	TotalAccounts     int64   `json:"totalAccounts"`
	ActiveAccounts    int64   `json:"activeAccounts"`
	TotalBalance      float64 `json:"totalBalance"`
	TotalTransactions int64   `json:"totalTransactions"`
}
