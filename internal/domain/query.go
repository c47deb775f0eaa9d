package domain

import "time"

// MinAdPublishedDate é a data mínima aceita pela API para consultas por
// período (anúncios e conteúdo comercial).
var MinAdPublishedDate = time.Date(2022, time.October, 1, 0, 0, 0, 0, time.UTC)

// AdQuery são os parâmetros de uma consulta de anúncios, construídos por
// chamada e imutáveis durante a sessão de paginação.
type AdQuery struct {
	StartDate             time.Time `json:"start_date"`
	EndDate               time.Time `json:"end_date"`
	CountryCode           string    `json:"country_code,omitempty"`
	SearchTerm            string    `json:"search_term,omitempty"`
	SearchType            string    `json:"search_type,omitempty"`
	AdvertiserBusinessIDs []int64   `json:"advertiser_business_ids,omitempty"`
	UsersSeenMin          string    `json:"users_seen_min,omitempty"`
	UsersSeenMax          string    `json:"users_seen_max,omitempty"`
	MaxCount              int       `json:"max_count,omitempty"`
	MaxPages              int       `json:"max_pages,omitempty"`

	// IncludeDetails dispara, para cada linha retornada, um lookup de
	// detalhe cujas colunas são juntadas por left join sobre a linha base.
	IncludeDetails bool `json:"include_details,omitempty"`

	// Tolerant ativa o modo tolerante da paginação: falha no meio da sessão
	// trunca a tabela em vez de falhar a chamada.
	Tolerant bool `json:"tolerant,omitempty"`
}

// AdvertiserQuery são os parâmetros da consulta de anunciantes. Sem filtro
// de datas.
type AdvertiserQuery struct {
	SearchTerm string `json:"search_term"`
	MaxCount   int    `json:"max_count,omitempty"`
}

// CommercialContentQuery são os parâmetros da consulta de conteúdo
// comercial.
type CommercialContentQuery struct {
	StartDate          time.Time `json:"start_date"`
	EndDate            time.Time `json:"end_date"`
	CreatorCountryCode string    `json:"creator_country_code,omitempty"`
	CreatorUsernames   []string  `json:"creator_usernames,omitempty"`
	MaxCount           int       `json:"max_count,omitempty"`
	MaxPages           int       `json:"max_pages,omitempty"`
	Tolerant           bool      `json:"tolerant,omitempty"`
}
