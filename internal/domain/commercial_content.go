package domain

import "time"

// CommercialContentRow é a linha achatada de um item de conteúdo comercial.
//
// Duas desnormalizações pontuais, reproduzidas exatamente como observadas na
// origem: brand_names explode em uma linha por marca (as demais colunas se
// repetem), e o objeto de vídeo explode em colunas irmãs (video_id,
// video_url, cover_image_url) em vez de ficar como lista opaca.
type CommercialContentRow struct {
	ID              string    `json:"id"`
	CreateDate      time.Time `json:"create_date"`
	Label           string    `json:"label,omitempty"`
	CreatorUsername string    `json:"creator_username,omitempty"`
	CreatorCountry  string    `json:"creator_country_code,omitempty"`
	BrandName       string    `json:"brand_names"`
	VideoID         string    `json:"video_id,omitempty"`
	VideoURL        string    `json:"video_url,omitempty"`
	CoverImageURL   string    `json:"cover_image_url,omitempty"`
}

// CommercialContentTable é a tabela de conteúdo comercial na ordem do
// servidor.
type CommercialContentTable struct {
	Rows      []CommercialContentRow `json:"rows"`
	Pages     int                    `json:"pages"`
	Truncated bool                   `json:"truncated,omitempty"`
}
