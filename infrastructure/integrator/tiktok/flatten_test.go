package tiktok

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tiktokdomain "github.com/vfg2006/ad-transparency-api/infrastructure/integrator/tiktok/domain"
)

func TestFlattenAd(t *testing.T) {
	item := tiktokdomain.AdItem{
		Ad: tiktokdomain.Ad{
			ID:             123456,
			FirstShownDate: "20230105",
			LastShownDate:  "20230220",
			Status:         "active",
			ImageURLs:      []string{"https://cdn.example.com/a.jpg"},
			Videos: []tiktokdomain.Video{
				{VideoID: "v1", VideoURL: "https://cdn.example.com/v1.mp4"},
			},
			Reach: &tiktokdomain.Reach{UniqueUsersSeen: 48000},
		},
		Advertiser: &tiktokdomain.Advertiser{
			BusinessID:   789,
			BusinessName: "ACME Ltd",
			PaidForBy:    "ACME Holdings",
		},
	}

	row, err := FlattenAd(item)
	require.NoError(t, err)

	assert.Equal(t, int64(123456), row.ID)
	assert.Equal(t, "2023-01-05", row.FirstShownDate.Format("2006-01-02"))
	assert.Equal(t, "2023-02-20", row.LastShownDate.Format("2006-01-02"))
	assert.Equal(t, int64(48000), row.Reach)
	assert.Equal(t, int64(789), row.AdvertiserBusinessID)
	assert.Equal(t, "ACME Holdings", row.AdvertiserPaidForBy)
	// Coleções permanecem embutidas na linha
	assert.Len(t, row.ImageURLs, 1)
	assert.Len(t, row.Videos, 1)
}

func TestFlattenAd_MissingOptionalFields(t *testing.T) {
	row, err := FlattenAd(tiktokdomain.AdItem{
		Ad: tiktokdomain.Ad{ID: 1, Status: "inactive"},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(0), row.Reach)
	assert.Equal(t, int64(0), row.AdvertiserBusinessID)
	assert.True(t, row.FirstShownDate.IsZero())
}

func TestFlattenAd_InvalidDate(t *testing.T) {
	_, err := FlattenAd(tiktokdomain.AdItem{
		Ad: tiktokdomain.Ad{ID: 1, FirstShownDate: "2023-01-05"},
	})
	assert.Error(t, err)
}

func TestFlattenAdDetail(t *testing.T) {
	detail := &tiktokdomain.AdDetailData{
		Ad: tiktokdomain.Ad{
			ID:            42,
			Status:        "rejected",
			RejectionInfo: "política de conteúdo",
		},
		AdGroup: &tiktokdomain.AdGroup{
			TargetingInfo: &tiktokdomain.TargetingInfo{Gender: "female"},
		},
	}

	row, err := FlattenAdDetail(detail)
	require.NoError(t, err)

	assert.Equal(t, "política de conteúdo", row.RejectionInfo)
	require.NotNil(t, row.TargetingInfo)
	assert.Equal(t, "female", row.TargetingInfo.Gender)
}

func TestFlattenCommercialContent_BrandNames(t *testing.T) {
	item := tiktokdomain.CommercialContent{
		ID:              "cc-1",
		CreateTimestamp: 1672531200, // 2023-01-01T00:00:00Z
		Label:           "paid partnership",
		BrandNames:      []string{"Marca A", "Marca B", "Marca C"},
		Creator:         &tiktokdomain.Creator{Username: "creator1", CountryCode: "BR"},
	}

	rows := FlattenCommercialContent(item)

	// N marcas rendem exatamente N linhas, com as demais colunas repetidas
	assert.Len(t, rows, 3)
	assert.Equal(t, "Marca A", rows[0].BrandName)
	assert.Equal(t, "Marca B", rows[1].BrandName)
	assert.Equal(t, "Marca C", rows[2].BrandName)

	for _, row := range rows {
		assert.Equal(t, "cc-1", row.ID)
		assert.Equal(t, "creator1", row.CreatorUsername)
		assert.Equal(t, "BR", row.CreatorCountry)
		assert.Equal(t, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), row.CreateDate)
	}
}

func TestFlattenCommercialContent_NoBrands(t *testing.T) {
	// N marcas rendem exatamente N linhas; zero marcas, zero linhas
	rows := FlattenCommercialContent(tiktokdomain.CommercialContent{ID: "cc-2"})
	assert.Empty(t, rows)

	rows = FlattenCommercialContent(tiktokdomain.CommercialContent{ID: "cc-2", BrandNames: []string{}})
	assert.Empty(t, rows)
}

func TestFlattenCommercialContent_FirstVideoWide(t *testing.T) {
	item := tiktokdomain.CommercialContent{
		ID: "cc-3",
		Videos: []tiktokdomain.Video{
			{VideoID: "v1", VideoURL: "https://v1", CoverImageURL: "https://c1"},
			{VideoID: "v2", VideoURL: "https://v2", CoverImageURL: "https://c2"},
		},
		BrandNames: []string{"Marca"},
	}

	rows := FlattenCommercialContent(item)

	// Apenas o primeiro vídeo vira colunas irmãs
	assert.Len(t, rows, 1)
	assert.Equal(t, "v1", rows[0].VideoID)
	assert.Equal(t, "https://v1", rows[0].VideoURL)
	assert.Equal(t, "https://c1", rows[0].CoverImageURL)
}
