package domain

import "time"

// StudioPackage represents a priced photography offering
type StudioPackage struct {
	ID          string // UUID
	Name        string
	Description string
	// Price цена пакета в рупиях; в платежный шлюз уходит в пайсах (x100)
	Price  int64
	Active bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PricePaise возвращает цену в минимальных единицах валюты шлюза
func (p *StudioPackage) PricePaise() int64 {
	return p.Price * 100
}
