package core

import (
	"golang.org/x/exp/slices"
)

const (
	RequesterTypeCtxKey    = "cs-requesterType"
	RequesterContextCtxKey = "cs-requesterContext"
	RequesterClaimsCtxKey  = "cs-requesterClaims"
)

const (
	SessionCookieName = "session"
)

const (
	Unknown = iota
	Member
	Admin
)

func RequesterTypeString(t int) string {
	switch t {
	case Member:
		return "Member"
	case Admin:
		return "Admin"
	case Unknown:
		return "Unknown"
	default:
		return "Error"
	}
}

const (
	SlotKeyVisual = "keyvisual"
	SlotSchedule  = "schedule"
)

// SectionKeys are the fixed intro sections of the top page
var SectionKeys = []string{
	"greeting",
	"theme",
	"program",
	"staff",
	"access",
}

// GalleryCategories are the accepted gallery image categories
var GalleryCategories = []string{
	"program",
	"worship",
	"recreation",
	"meal",
	"other",
}

const (
	DoorCount = 6

	MessageMaxLength = 500
	AuthorMaxLength  = 50
	UserIDMaxLength  = 32
)

func IsSectionKey(key string) bool {
	return slices.Contains(SectionKeys, key)
}

func IsGalleryCategory(category string) bool {
	return slices.Contains(GalleryCategories, category)
}

func IsDoorIndex(index int) bool {
	return index >= 0 && index < DoorCount
}
