package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"asset-manager-api/internal/domain/asset"
	dto "asset-manager-api/internal/interface/api/rest/dto/asset"
)

func sptr(s string) *string { return &s }

func TestRequireString(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    string
		wantErr bool
	}{
		{name: "plain value", value: "report", want: "report"},
		{name: "trims whitespace", value: "  report \n", want: "report"},
		{name: "normalizes to NFC", value: "éclair", want: "éclair"},
		{name: "empty fails", value: "", wantErr: true},
		{name: "whitespace only fails", value: "   ", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, ferr := RequireString(tt.value, "name")
			if tt.wantErr {
				require.NotNil(t, ferr)
				assert.Equal(t, "name", ferr.Field)
				assert.Equal(t, "name is required", ferr.Message)
				return
			}
			require.Nil(t, ferr)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequireEnum(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    asset.Category
		wantErr bool
	}{
		{name: "exact match", value: "image", want: asset.CategoryImage},
		{name: "case insensitive", value: "DOCUMENT", want: asset.CategoryDocument},
		{name: "trims before matching", value: " video ", want: asset.CategoryVideo},
		{name: "unknown value", value: "archive", wantErr: true},
		{name: "empty value", value: "", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, ferr := RequireEnum(tt.value, "category")
			if tt.wantErr {
				require.NotNil(t, ferr)
				assert.Equal(t, "category", ferr.Field)
				assert.Equal(t, "category must be one of: image, document, video, other", ferr.Message)
				return
			}
			require.Nil(t, ferr)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequireLength(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		min     int
		max     int
		wantErr bool
	}{
		{name: "within bounds", value: "abc", min: 1, max: 5},
		{name: "exactly max", value: strings.Repeat("x", 255), min: 1, max: 255},
		{name: "over max", value: strings.Repeat("x", 256), min: 1, max: 255, wantErr: true},
		{name: "under min", value: "", min: 1, max: 255, wantErr: true},
		{name: "counts runes not bytes", value: strings.Repeat("é", 255), min: 1, max: 255},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			ferr := RequireLength(tt.value, "name", tt.min, tt.max)
			if tt.wantErr {
				require.NotNil(t, ferr)
				assert.Equal(t, "name", ferr.Field)
				assert.Contains(t, ferr.Message, "length must be")
				return
			}
			assert.Nil(t, ferr)
		})
	}
}

func TestIsUUID(t *testing.T) {
	ok, id := IsUUID("7a9f8f6e-3c4b-4e0f-9d5a-1b2c3d4e5f60")
	require.True(t, ok)
	assert.Equal(t, "7a9f8f6e-3c4b-4e0f-9d5a-1b2c3d4e5f60", id.String())

	ok, _ = IsUUID("not-a-uuid")
	assert.False(t, ok)

	ok, _ = IsUUID("")
	assert.False(t, ok)
}

func TestParseLimit(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{in: "", want: DefaultLimit},
		{in: "abc", want: DefaultLimit},
		{in: "7", want: 7},
		{in: "0", want: 1},
		{in: "-5", want: 1},
		{in: "100", want: 100},
		{in: "500", want: MaxLimit},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLimit(tt.in), "limit=%q", tt.in)
	}
}

func TestParseOffset(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{in: "", want: 0},
		{in: "abc", want: 0},
		{in: "-1", want: 0},
		{in: "0", want: 0},
		{in: "30", want: 30},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseOffset(tt.in), "offset=%q", tt.in)
	}
}

func TestParseListFilter(t *testing.T) {
	f := ParseListFilter(" alice ", "IMAGE")
	assert.Equal(t, "alice", f.OwnerID)
	assert.Equal(t, "image", f.Category)

	// unknown categories pass through and match nothing downstream
	f = ParseListFilter("", "archive")
	assert.Equal(t, "", f.OwnerID)
	assert.Equal(t, "archive", f.Category)
}

func TestValidateCreateAsset(t *testing.T) {
	valid := dto.CreateRequest{
		OwnerID:  "owner-1",
		Name:     "Q3 report",
		Category: "document",
	}

	tests := []struct {
		name      string
		req       dto.CreateRequest
		wantField string
		wantMsg   string
		check     func(t *testing.T, a asset.Asset)
	}{
		{
			name: "valid full payload is normalized",
			req: dto.CreateRequest{
				OwnerID:     " owner-1 ",
				Name:        "  Q3 report ",
				Description: " quarterly figures ",
				Category:    "DOCUMENT",
				ImageKey:    " uploads/q3.pdf ",
			},
			check: func(t *testing.T, a asset.Asset) {
				assert.Equal(t, "owner-1", a.OwnerID)
				assert.Equal(t, "Q3 report", a.Name)
				assert.Equal(t, "quarterly figures", a.Description)
				assert.Equal(t, asset.CategoryDocument, a.Category)
				assert.Equal(t, "uploads/q3.pdf", a.ImageKey)
			},
		},
		{
			name: "optional fields default to empty",
			req:  valid,
			check: func(t *testing.T, a asset.Asset) {
				assert.Equal(t, "", a.Description)
				assert.Equal(t, "", a.ImageKey)
			},
		},
		{
			name:      "missing ownerId",
			req:       dto.CreateRequest{Name: "a", Category: "image"},
			wantField: "ownerId",
			wantMsg:   "ownerId is required",
		},
		{
			name:      "missing name",
			req:       dto.CreateRequest{OwnerID: "o", Category: "image"},
			wantField: "name",
			wantMsg:   "name is required",
		},
		{
			name:      "name over 255 runes",
			req:       dto.CreateRequest{OwnerID: "o", Name: strings.Repeat("x", 256), Category: "image"},
			wantField: "name",
			wantMsg:   "name length must be 1–255 characters",
		},
		{
			name:      "missing category",
			req:       dto.CreateRequest{OwnerID: "o", Name: "a"},
			wantField: "category",
			wantMsg:   "category is required",
		},
		{
			name:      "unknown category",
			req:       dto.CreateRequest{OwnerID: "o", Name: "a", Category: "archive"},
			wantField: "category",
			wantMsg:   "category must be one of: image, document, video, other",
		},
		{
			name: "description over 5000 runes",
			req: dto.CreateRequest{
				OwnerID: "o", Name: "a", Category: "image",
				Description: strings.Repeat("d", 5001),
			},
			wantField: "description",
			wantMsg:   "description length must be 0–5000 characters",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			a, ferr := ValidateCreateAsset(tt.req)
			if tt.wantMsg != "" {
				require.NotNil(t, ferr)
				assert.Equal(t, tt.wantField, ferr.Field)
				assert.Equal(t, tt.wantMsg, ferr.Message)
				return
			}
			require.Nil(t, ferr)
			if tt.check != nil {
				tt.check(t, a)
			}
		})
	}
}

func TestValidateUpdateAsset(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.UpdateRequest
		wantField string
		wantMsg   string
		check     func(t *testing.T, upd asset.Update)
	}{
		{
			name:    "ownerId is immutable",
			req:     dto.UpdateRequest{OwnerID: sptr("someone-else"), Name: sptr("x")},
			wantMsg: "ownerId cannot be modified", wantField: "ownerId",
		},
		{
			name:    "no updatable fields",
			req:     dto.UpdateRequest{},
			wantMsg: "request body must contain at least one updatable field",
		},
		{
			name:      "blank name rejected",
			req:       dto.UpdateRequest{Name: sptr("   ")},
			wantField: "name",
			wantMsg:   "name is required",
		},
		{
			name:      "name over 255 runes",
			req:       dto.UpdateRequest{Name: sptr(strings.Repeat("x", 256))},
			wantField: "name",
			wantMsg:   "name length must be 1–255 characters",
		},
		{
			name:      "unknown category",
			req:       dto.UpdateRequest{Category: sptr("archive")},
			wantField: "category",
			wantMsg:   "category must be one of: image, document, video, other",
		},
		{
			name: "name is trimmed",
			req:  dto.UpdateRequest{Name: sptr("  New Name ")},
			check: func(t *testing.T, upd asset.Update) {
				require.NotNil(t, upd.Name)
				assert.Equal(t, "New Name", *upd.Name)
				assert.Nil(t, upd.Description)
				assert.Nil(t, upd.Category)
				assert.Nil(t, upd.ImageKey)
			},
		},
		{
			name: "blank description clears it",
			req:  dto.UpdateRequest{Description: sptr("  ")},
			check: func(t *testing.T, upd asset.Update) {
				require.NotNil(t, upd.Description)
				assert.Equal(t, "", *upd.Description)
			},
		},
		{
			name: "blank imageKey clears it",
			req:  dto.UpdateRequest{ImageKey: sptr("")},
			check: func(t *testing.T, upd asset.Update) {
				require.NotNil(t, upd.ImageKey)
				assert.Equal(t, "", *upd.ImageKey)
			},
		},
		{
			name: "category normalized",
			req:  dto.UpdateRequest{Category: sptr(" VIDEO ")},
			check: func(t *testing.T, upd asset.Update) {
				require.NotNil(t, upd.Category)
				assert.Equal(t, asset.CategoryVideo, *upd.Category)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			upd, ferr := ValidateUpdateAsset(tt.req)
			if tt.wantMsg != "" {
				require.NotNil(t, ferr)
				assert.Equal(t, tt.wantMsg, ferr.Message)
				if tt.wantField != "" {
					assert.Equal(t, tt.wantField, ferr.Field)
				}
				return
			}
			require.Nil(t, ferr)
			if tt.check != nil {
				tt.check(t, upd)
			}
		})
	}
}
