package constants

import "time"

// Redis key and TTL catalogue for the console API.
// Pattern: nextu:{module}:{operation}:{identifier}

const CACHE_PREFIX = "nextu"

// ================== TTL DURATIONS ==================

const (
	TTL_STATIC_LONG   = 24 * time.Hour   // enumerations (categories, levels, room attributes)
	TTL_STATIC_SHORT  = 6 * time.Hour    // room type listings
	TTL_DYNAMIC_SHORT = 5 * time.Minute  // event/pending listings shown in the workflow context
	TTL_REALTIME      = 30 * time.Second // submit lock fallback
)

// ================== DRAFT WORKFLOW ==================

const (
	// Draft sessions live under their draft ID; the trailing segment is the ID.
	KEY_DRAFT            = CACHE_PREFIX + ":draft:"             // + draft-id
	KEY_DRAFT_SUBMITTING = CACHE_PREFIX + ":draft:submitting:"  // + draft-id (submit lock)
)

// ================== LIST CACHES ==================

const (
	CACHE_KEY_CATEGORIES_ALL   = CACHE_PREFIX + ":categories:list"
	CACHE_KEY_LEVELS_ALL       = CACHE_PREFIX + ":levels:list"
	CACHE_KEY_EVENTS_PUBLISHED = CACHE_PREFIX + ":events:list:published"
	CACHE_KEY_EVENTS_PENDING   = CACHE_PREFIX + ":events:list:pending"
	CACHE_KEY_ROOM_ATTRIBUTES  = CACHE_PREFIX + ":rooms:attributes" // + :kind
)

const (
	TTL_CATEGORIES      = TTL_STATIC_LONG
	TTL_LEVELS          = TTL_STATIC_LONG
	TTL_EVENT_LISTS     = TTL_DYNAMIC_SHORT
	TTL_ROOM_ATTRIBUTES = TTL_STATIC_LONG
)

// ================== INVALIDATION PATTERNS ==================

const (
	PATTERN_INVALIDATE_EVENTS     = CACHE_PREFIX + ":events:*"
	PATTERN_INVALIDATE_CATEGORIES = CACHE_PREFIX + ":categories:*"
	PATTERN_INVALIDATE_LEVELS     = CACHE_PREFIX + ":levels:*"
	PATTERN_INVALIDATE_ROOMS      = CACHE_PREFIX + ":rooms:*"
)

// ================== KEY BUILDERS ==================

func BuildDraftKey(draftID string) string {
	return KEY_DRAFT + draftID
}

func BuildDraftSubmitLockKey(draftID string) string {
	return KEY_DRAFT_SUBMITTING + draftID
}

func BuildRoomAttributeKey(kind string) string {
	return CACHE_KEY_ROOM_ATTRIBUTES + ":" + kind
}
