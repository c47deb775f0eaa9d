package tiktokdomain

// DateRange é um intervalo de datas no formato de fio da API (YYYYMMDD).
type DateRange struct {
	Min string `json:"min"`
	Max string `json:"max"`
}

// UsersSizeRange filtra anúncios pela faixa de usuários únicos alcançados.
type UsersSizeRange struct {
	Min string `json:"min,omitempty"`
	Max string `json:"max,omitempty"`
}

// AdFilters são os filtros aceitos pelo endpoint de consulta de anúncios.
// O conjunto é imutável durante uma sessão de paginação: apenas o search_id
// muda entre as requisições.
type AdFilters struct {
	AdPublishedDateRange     *DateRange      `json:"ad_published_date_range,omitempty"`
	CountryCode              string          `json:"country_code,omitempty"`
	AdvertiserBusinessIDs    []int64         `json:"advertiser_business_ids,omitempty"`
	UniqueUsersSeenSizeRange *UsersSizeRange `json:"unique_users_seen_size_range,omitempty"`
}

// ContentFilters são os filtros do endpoint de conteúdo comercial.
type ContentFilters struct {
	ContentPublishedDateRange *DateRange `json:"content_published_date_range,omitempty"`
	CreatorCountryCode        string     `json:"creator_country_code,omitempty"`
	CreatorUsernames          []string   `json:"creator_usernames,omitempty"`
}
