package validator

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"

	"asset-manager-api/internal/domain/asset"
	dto "asset-manager-api/internal/interface/api/rest/dto/asset"
)

const (
	MinNameLen        = 1
	MaxNameLen        = 255
	MaxDescriptionLen = 5000

	DefaultLimit = 10
	MaxLimit     = 100
)

// FieldError reports the first field that failed validation.
type FieldError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string { return e.Message }

// RequireString normalizes the value (NFC + trim) and fails when
// nothing remains.
func RequireString(value, field string) (string, *FieldError) {
	v := OptionalString(value)
	if v == "" {
		return "", &FieldError{Field: field, Message: field + " is required"}
	}

	return v, nil
}

// OptionalString normalizes the value; a blank result means "absent".
func OptionalString(value string) string {
	return strings.TrimSpace(norm.NFC.String(value))
}

func RequireEnum(value, field string) (asset.Category, *FieldError) {
	c, ok := asset.ParseCategory(value)
	if !ok {
		return "", &FieldError{
			Field:   field,
			Message: field + " must be one of: " + allowedCategories,
		}
	}

	return c, nil
}

func RequireLength(value, field string, min, max int) *FieldError {
	if l := utf8.RuneCountInString(value); l < min || l > max {
		return &FieldError{
			Field: field,
			Message: field + " length must be " +
				strconv.Itoa(min) + "–" + strconv.Itoa(max) + " characters",
		}
	}

	return nil
}

func IsUUID(s string) (bool, uuid.UUID) {
	id, err := uuid.Parse(s)
	return err == nil, id
}

// ParseLimit clamps the page size into [1, MaxLimit]; anything
// unparseable falls back to the default.
func ParseLimit(s string) int {
	if s == "" {
		return DefaultLimit
	}
	l, err := strconv.Atoi(s)
	if err != nil {
		return DefaultLimit
	}
	if l < 1 {
		return 1
	}
	if l > MaxLimit {
		return MaxLimit
	}

	return l
}

func ParseOffset(s string) int {
	o, err := strconv.Atoi(s)
	if err != nil || o < 0 {
		return 0
	}

	return o
}

func ParsePage(limit, offset string) asset.Page {
	return asset.Page{
		Limit:  ParseLimit(limit),
		Offset: ParseOffset(offset),
	}
}

// ParseListFilter normalizes optional query filters. Unknown category
// values pass through and simply match nothing.
func ParseListFilter(ownerID, category string) asset.ListFilter {
	return asset.ListFilter{
		OwnerID:  OptionalString(ownerID),
		Category: strings.ToLower(OptionalString(category)),
	}
}

// ValidateCreateAsset checks the creation payload and maps it into a
// domain asset. The first failing field wins.
func ValidateCreateAsset(r dto.CreateRequest) (asset.Asset, *FieldError) {
	ownerID, ferr := RequireString(r.OwnerID, "ownerId")
	if ferr != nil {
		return asset.Asset{}, ferr
	}

	name, ferr := RequireString(r.Name, "name")
	if ferr != nil {
		return asset.Asset{}, ferr
	}
	if ferr = RequireLength(name, "name", MinNameLen, MaxNameLen); ferr != nil {
		return asset.Asset{}, ferr
	}

	rawCategory, ferr := RequireString(r.Category, "category")
	if ferr != nil {
		return asset.Asset{}, ferr
	}
	category, ferr := RequireEnum(rawCategory, "category")
	if ferr != nil {
		return asset.Asset{}, ferr
	}

	description := OptionalString(r.Description)
	if ferr = RequireLength(description, "description", 0, MaxDescriptionLen); ferr != nil {
		return asset.Asset{}, ferr
	}

	return asset.Asset{
		OwnerID:     ownerID,
		Name:        name,
		Description: description,
		Category:    category,
		ImageKey:    OptionalString(r.ImageKey),
	}, nil
}

// ValidateUpdateAsset checks a partial update payload. ownerId is
// immutable and rejected outright; at least one updatable field must
// remain after validation.
func ValidateUpdateAsset(r dto.UpdateRequest) (asset.Update, *FieldError) {
	if r.OwnerID != nil {
		return asset.Update{}, &FieldError{Field: "ownerId", Message: "ownerId cannot be modified"}
	}

	var upd asset.Update
	if r.Name != nil {
		name, ferr := RequireString(*r.Name, "name")
		if ferr != nil {
			return asset.Update{}, ferr
		}
		if ferr = RequireLength(name, "name", MinNameLen, MaxNameLen); ferr != nil {
			return asset.Update{}, ferr
		}
		upd.Name = &name
	}
	if r.Description != nil {
		description := OptionalString(*r.Description)
		if ferr := RequireLength(description, "description", 0, MaxDescriptionLen); ferr != nil {
			return asset.Update{}, ferr
		}
		upd.Description = &description
	}
	if r.Category != nil {
		category, ferr := RequireEnum(*r.Category, "category")
		if ferr != nil {
			return asset.Update{}, ferr
		}
		upd.Category = &category
	}
	if r.ImageKey != nil {
		imageKey := OptionalString(*r.ImageKey)
		upd.ImageKey = &imageKey
	}

	if upd.Empty() {
		return asset.Update{}, &FieldError{Message: "request body must contain at least one updatable field"}
	}

	return upd, nil
}

var allowedCategories = func() string {
	cats := asset.Categories()
	parts := make([]string, len(cats))
	for i, c := range cats {
		parts[i] = string(c)
	}
	return strings.Join(parts, ", ")
}()
