package domain

import (
	tiktokdomain "github.com/vfg2006/ad-transparency-api/infrastructure/integrator/tiktok/domain"
)

// AdRow é a linha tabular achatada de um anúncio. Coleções aninhadas
// (image_urls, videos, segmentação) permanecem como valores embutidos na
// linha, nunca viram linhas próprias.
type AdRow struct {
	ID                     int64                `json:"id"`
	FirstShownDate         Date                 `json:"first_shown_date"`
	LastShownDate          Date                 `json:"last_shown_date"`
	Status                 string               `json:"status"`
	ImageURLs              []string             `json:"image_urls"`
	Videos                 []tiktokdomain.Video `json:"videos"`
	Reach                  int64                `json:"reach"`
	AdvertiserBusinessID   int64                `json:"advertiser_business_id"`
	AdvertiserBusinessName string               `json:"advertiser_business_name"`
	AdvertiserPaidForBy    string               `json:"advertiser_paid_for_by"`

	// Colunas preenchidas apenas pelo lookup de detalhe (left join por id).
	RejectionInfo string                      `json:"rejection_info,omitempty"`
	TargetingInfo *tiktokdomain.TargetingInfo `json:"targeting_info,omitempty"`
}

// MergeDetails faz o left join das colunas do detalhe sobre a linha base:
// colunas já presentes na linha base nunca são sobrescritas.
func (r *AdRow) MergeDetails(detail *AdRow) {
	if detail == nil || detail.ID != r.ID {
		return
	}

	if r.FirstShownDate.IsZero() {
		r.FirstShownDate = detail.FirstShownDate
	}
	if r.LastShownDate.IsZero() {
		r.LastShownDate = detail.LastShownDate
	}
	if r.Status == "" {
		r.Status = detail.Status
	}
	if len(r.ImageURLs) == 0 {
		r.ImageURLs = detail.ImageURLs
	}
	if len(r.Videos) == 0 {
		r.Videos = detail.Videos
	}
	if r.Reach == 0 {
		r.Reach = detail.Reach
	}
	if r.AdvertiserBusinessID == 0 {
		r.AdvertiserBusinessID = detail.AdvertiserBusinessID
	}
	if r.AdvertiserBusinessName == "" {
		r.AdvertiserBusinessName = detail.AdvertiserBusinessName
	}
	if r.AdvertiserPaidForBy == "" {
		r.AdvertiserPaidForBy = detail.AdvertiserPaidForBy
	}
	if r.RejectionInfo == "" {
		r.RejectionInfo = detail.RejectionInfo
	}
	if r.TargetingInfo == nil {
		r.TargetingInfo = detail.TargetingInfo
	}
}

// AdTable é a tabela acumulada por concatenação entre páginas, na ordem
// devolvida pelo servidor, sem deduplicação.
type AdTable struct {
	Rows      []AdRow `json:"rows"`
	Pages     int     `json:"pages"`
	Truncated bool    `json:"truncated,omitempty"`
}
