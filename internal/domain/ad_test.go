package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	tiktokdomain "github.com/vfg2006/ad-transparency-api/infrastructure/integrator/tiktok/domain"
)

func TestMergeDetails(t *testing.T) {
	t.Run("não sobrescreve colunas já preenchidas", func(t *testing.T) {
		base := AdRow{
			ID:                     1,
			Status:                 "active",
			Reach:                  5000,
			AdvertiserBusinessName: "Loja X",
		}

		base.MergeDetails(&AdRow{
			ID:                     1,
			Status:                 "rejected",
			Reach:                  9999,
			AdvertiserBusinessName: "Outro nome",
			RejectionInfo:          "política de anúncios",
		})

		assert.Equal(t, "active", base.Status)
		assert.Equal(t, int64(5000), base.Reach)
		assert.Equal(t, "Loja X", base.AdvertiserBusinessName)
		// Colunas ausentes na base são preenchidas pelo detalhe
		assert.Equal(t, "política de anúncios", base.RejectionInfo)
	})

	t.Run("preenche colunas vazias", func(t *testing.T) {
		base := AdRow{ID: 2}

		detail := &AdRow{
			ID:             2,
			Status:         "inactive",
			FirstShownDate: NewDate(time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)),
			ImageURLs:      []string{"https://cdn/img.png"},
			TargetingInfo:  &tiktokdomain.TargetingInfo{Gender: "all"},
		}
		base.MergeDetails(detail)

		assert.Equal(t, "inactive", base.Status)
		assert.Equal(t, "2024-01-05", base.FirstShownDate.Format(time.DateOnly))
		assert.Equal(t, []string{"https://cdn/img.png"}, base.ImageURLs)
		assert.Equal(t, "all", base.TargetingInfo.Gender)
	})

	t.Run("ignora detalhe de outro anúncio", func(t *testing.T) {
		base := AdRow{ID: 3}

		base.MergeDetails(&AdRow{ID: 4, Status: "active"})
		assert.Empty(t, base.Status)
	})

	t.Run("ignora detalhe nil", func(t *testing.T) {
		base := AdRow{ID: 3, Status: "active"}

		base.MergeDetails(nil)
		assert.Equal(t, "active", base.Status)
	})
}

func TestParseWireDate(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
		isZero  bool
	}{
		{name: "data válida", raw: "20240105", want: "2024-01-05"},
		{name: "vazio vira data zerada", raw: "", isZero: true},
		{name: "formato ISO é rejeitado", raw: "2024-01-05", wantErr: true},
		{name: "lixo é rejeitado", raw: "ontem", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseWireDate(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			if tt.isZero {
				assert.True(t, d.IsZero())
				return
			}
			assert.Equal(t, tt.want, d.Format(time.DateOnly))
		})
	}
}

func TestWireDate(t *testing.T) {
	d := time.Date(2022, 10, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "20221001", WireDate(d))
}

func TestDateJSON(t *testing.T) {
	t.Run("serializa como YYYY-MM-DD", func(t *testing.T) {
		d := NewDate(time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC))

		raw, err := d.MarshalJSON()
		assert.NoError(t, err)
		assert.Equal(t, `"2024-03-09"`, string(raw))
	})

	t.Run("data zerada vira null", func(t *testing.T) {
		raw, err := Date{}.MarshalJSON()
		assert.NoError(t, err)
		assert.Equal(t, "null", string(raw))
	})

	t.Run("null volta como data zerada", func(t *testing.T) {
		var d Date
		assert.NoError(t, d.UnmarshalJSON([]byte("null")))
		assert.True(t, d.IsZero())
	})

	t.Run("roda de volta do JSON", func(t *testing.T) {
		var d Date
		assert.NoError(t, d.UnmarshalJSON([]byte(`"2024-03-09"`)))
		assert.Equal(t, "2024-03-09", d.Format(time.DateOnly))
	})
}
