package tiktokdomain

// CommercialContent é um item de conteúdo comercial como retornado pela API.
// CreateTimestamp é unix em segundos.
type CommercialContent struct {
	ID              string   `json:"id"`
	CreateTimestamp int64    `json:"create_timestamp,omitempty"`
	Label           string   `json:"label,omitempty"`
	BrandNames      []string `json:"brand_names,omitempty"`
	Videos          []Video  `json:"videos,omitempty"`
	Creator         *Creator `json:"creator,omitempty"`
}

// Creator identifica o criador do conteúdo comercial.
type Creator struct {
	Username    string `json:"username,omitempty"`
	CountryCode string `json:"country_code,omitempty"`
}

// ContentQueryRequest é o corpo da consulta de conteúdo comercial.
type ContentQueryRequest struct {
	Filters  ContentFilters `json:"filters"`
	MaxCount int            `json:"max_count,omitempty"`
	SearchID string         `json:"search_id,omitempty"`
}

// ContentQueryData é o payload de uma página da consulta de conteúdo
// comercial.
type ContentQueryData struct {
	CommercialContents []CommercialContent `json:"commercial_contents"`
	HasMore            bool                `json:"has_more"`
	SearchID           string              `json:"search_id,omitempty"`
}
