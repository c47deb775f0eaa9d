package tiktokdomain

// Ad é o registro bruto de um anúncio como retornado pela API.
// Datas vêm no formato de fio YYYYMMDD.
type Ad struct {
	ID             int64    `json:"id"`
	FirstShownDate string   `json:"first_shown_date,omitempty"`
	LastShownDate  string   `json:"last_shown_date,omitempty"`
	Status         string   `json:"status,omitempty"`
	ImageURLs      []string `json:"image_urls,omitempty"`
	Videos         []Video  `json:"videos,omitempty"`
	Reach          *Reach   `json:"reach,omitempty"`
	RejectionInfo  string   `json:"rejection_info,omitempty"`
}

// Video é o objeto aninhado de vídeo compartilhado por anúncios e conteúdo
// comercial.
type Video struct {
	VideoID       string `json:"video_id,omitempty"`
	VideoURL      string `json:"video_url,omitempty"`
	CoverImageURL string `json:"cover_image_url,omitempty"`
}

// Reach agrega as métricas de alcance de um anúncio. As métricas por país
// são mantidas como sub-valor embutido, nunca normalizadas em linhas.
type Reach struct {
	UniqueUsersSeen          int64            `json:"unique_users_seen"`
	UniqueUsersSeenByCountry map[string]int64 `json:"unique_users_seen_by_country,omitempty"`
}

// Advertiser identifica o anunciante responsável por um anúncio.
type Advertiser struct {
	BusinessID   int64  `json:"business_id,omitempty"`
	BusinessName string `json:"business_name,omitempty"`
	PaidForBy    string `json:"paid_for_by,omitempty"`
	CountryCode  string `json:"country_code,omitempty"`
}

// AdItem é um item da lista retornada pela consulta de anúncios: o anúncio
// mais os campos do anunciante solicitados via query-string fields.
type AdItem struct {
	Ad         Ad          `json:"ad"`
	Advertiser *Advertiser `json:"advertiser,omitempty"`
}

// AdQueryRequest é o corpo JSON da consulta de anúncios. SearchID carrega o
// cursor opaco entre páginas de uma mesma sessão.
type AdQueryRequest struct {
	Filters    AdFilters `json:"filters"`
	SearchTerm string    `json:"search_term,omitempty"`
	SearchType string    `json:"search_type,omitempty"`
	MaxCount   int       `json:"max_count,omitempty"`
	SearchID   string    `json:"search_id,omitempty"`
}

// AdQueryData é o payload de uma página da consulta de anúncios.
type AdQueryData struct {
	Ads      []AdItem `json:"ads"`
	HasMore  bool     `json:"has_more"`
	SearchID string   `json:"search_id,omitempty"`
}

// AdDetailRequest é o corpo da consulta de detalhe de um anúncio.
type AdDetailRequest struct {
	AdID int64 `json:"ad_id"`
}

// TargetingInfo descreve a segmentação do grupo de anúncios, retornada
// apenas pelo endpoint de detalhe.
type TargetingInfo struct {
	Countries         []CountryTargeting `json:"countries,omitempty"`
	Gender            string             `json:"gender,omitempty"`
	AgeGroups         []string           `json:"age_groups,omitempty"`
	AudienceTargeting []string           `json:"audience_targeting,omitempty"`
}

// CountryTargeting é a quebra de segmentação por país.
type CountryTargeting struct {
	Country      string `json:"country"`
	AdGroupReach int64  `json:"ad_group_reach,omitempty"`
}

// AdGroup embrulha a segmentação no payload de detalhe.
type AdGroup struct {
	TargetingInfo *TargetingInfo `json:"targeting_info,omitempty"`
}

// AdDetailData é o payload do endpoint de detalhe (sem paginação).
type AdDetailData struct {
	Ad         Ad          `json:"ad"`
	Advertiser *Advertiser `json:"advertiser,omitempty"`
	AdGroup    *AdGroup    `json:"ad_group,omitempty"`
}
