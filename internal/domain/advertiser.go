package domain

// AdvertiserRow é a linha tabular achatada de um anunciante.
type AdvertiserRow struct {
	BusinessID   int64  `json:"business_id"`
	BusinessName string `json:"business_name"`
	CountryCode  string `json:"country_code"`
}

// AdvertiserTable é a tabela de anunciantes na ordem do servidor.
type AdvertiserTable struct {
	Rows []AdvertiserRow `json:"rows"`
}
