package tiktokdomain

// AdvertiserQueryRequest é o corpo da consulta de anunciantes.
type AdvertiserQueryRequest struct {
	SearchTerm string `json:"search_term"`
	MaxCount   int    `json:"max_count,omitempty"`
}

// AdvertiserQueryData é o payload da consulta de anunciantes. O endpoint não
// emite cursor: uma única requisição por chamada.
type AdvertiserQueryData struct {
	Advertisers []Advertiser `json:"advertisers"`
}
