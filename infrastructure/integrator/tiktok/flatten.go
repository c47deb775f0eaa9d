package tiktok

import (
	"fmt"
	"time"

	tiktokdomain "github.com/vfg2006/ad-transparency-api/infrastructure/integrator/tiktok/domain"
	"github.com/vfg2006/ad-transparency-api/internal/domain"
)

// FlattenAd projeta um item bruto da consulta de anúncios em uma linha
// tabular. Função pura: caminhos aninhados viram colunas planas
// (ad.reach.unique_users_seen -> reach), listas ficam embutidas na linha.
func FlattenAd(item tiktokdomain.AdItem) (domain.AdRow, error) {
	firstShown, err := domain.ParseWireDate(item.Ad.FirstShownDate)
	if err != nil {
		return domain.AdRow{}, fmt.Errorf("first_shown_date do anúncio %d: %w", item.Ad.ID, err)
	}

	lastShown, err := domain.ParseWireDate(item.Ad.LastShownDate)
	if err != nil {
		return domain.AdRow{}, fmt.Errorf("last_shown_date do anúncio %d: %w", item.Ad.ID, err)
	}

	row := domain.AdRow{
		ID:             item.Ad.ID,
		FirstShownDate: firstShown,
		LastShownDate:  lastShown,
		Status:         item.Ad.Status,
		ImageURLs:      item.Ad.ImageURLs,
		Videos:         item.Ad.Videos,
		RejectionInfo:  item.Ad.RejectionInfo,
	}

	if item.Ad.Reach != nil {
		row.Reach = item.Ad.Reach.UniqueUsersSeen
	}

	if item.Advertiser != nil {
		row.AdvertiserBusinessID = item.Advertiser.BusinessID
		row.AdvertiserBusinessName = item.Advertiser.BusinessName
		row.AdvertiserPaidForBy = item.Advertiser.PaidForBy
	}

	return row, nil
}

// FlattenAdDetail projeta o payload de detalhe em uma linha, incluindo a
// coluna de segmentação que só o detalhe expõe.
func FlattenAdDetail(detail *tiktokdomain.AdDetailData) (domain.AdRow, error) {
	row, err := FlattenAd(tiktokdomain.AdItem{Ad: detail.Ad, Advertiser: detail.Advertiser})
	if err != nil {
		return domain.AdRow{}, err
	}

	if detail.AdGroup != nil {
		row.TargetingInfo = detail.AdGroup.TargetingInfo
	}

	return row, nil
}

// FlattenAdvertiser projeta um anunciante bruto em linha tabular.
func FlattenAdvertiser(adv tiktokdomain.Advertiser) domain.AdvertiserRow {
	return domain.AdvertiserRow{
		BusinessID:   adv.BusinessID,
		BusinessName: adv.BusinessName,
		CountryCode:  adv.CountryCode,
	}
}

// FlattenCommercialContent projeta um item de conteúdo comercial em linhas
// tabulares, reproduzindo as duas desnormalizações observadas na origem:
//
//   - brand_names explode em uma linha por marca (N marcas -> exatamente N
//     linhas, demais colunas repetidas). Item sem marca não rende linha.
//   - o primeiro objeto de videos explode em colunas irmãs (unnest "wide"
//     posicional: video_id, video_url, cover_image_url).
func FlattenCommercialContent(item tiktokdomain.CommercialContent) []domain.CommercialContentRow {
	base := domain.CommercialContentRow{
		ID:    item.ID,
		Label: item.Label,
	}

	if item.CreateTimestamp > 0 {
		base.CreateDate = time.Unix(item.CreateTimestamp, 0).UTC()
	}

	if item.Creator != nil {
		base.CreatorUsername = item.Creator.Username
		base.CreatorCountry = item.Creator.CountryCode
	}

	if len(item.Videos) > 0 {
		base.VideoID = item.Videos[0].VideoID
		base.VideoURL = item.Videos[0].VideoURL
		base.CoverImageURL = item.Videos[0].CoverImageURL
	}

	rows := make([]domain.CommercialContentRow, 0, len(item.BrandNames))
	for _, brand := range item.BrandNames {
		row := base
		row.BrandName = brand
		rows = append(rows, row)
	}

	return rows
}
