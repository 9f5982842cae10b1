package entity

// ShopStats counts inbox rows by status for one shop.
type ShopStats struct {
	Pending   int `json:"pending"`
	Processed int `json:"processed"`
	Errors    int `json:"errors"`
}

// InboxStats aggregates the webhook inbox across shops.
type InboxStats struct {
	PerShop map[string]ShopStats `json:"per_shop"`
	Total   ShopStats            `json:"total"`
}
