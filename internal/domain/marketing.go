package domain

import (
	"time"

	"github.com/google/uuid"
)

// Platform is a marketing-copy target as presented to users.
type Platform string

const (
	PlatformInstagram          Platform = "Instagram"
	PlatformTwitter            Platform = "X (Twitter)"
	PlatformFacebook           Platform = "Facebook"
	PlatformProductDescription Platform = "Product Description"
	PlatformHashtags           Platform = "Hashtags"
)

var platformKeys = map[Platform]string{
	PlatformInstagram:          "instagram",
	PlatformTwitter:            "twitter",
	PlatformFacebook:           "facebook",
	PlatformProductDescription: "product_description",
	PlatformHashtags:           "hashtags",
}

func (p Platform) String() string { return string(p) }

func (p Platform) IsValid() bool {
	_, ok := platformKeys[p]
	return ok
}

// Key returns the canonical JSON key for p, or "" if p is unknown.
func (p Platform) Key() string { return platformKeys[p] }

// ProductFacts are the seller-supplied facts a copy set was written from.
// Empty optional fields are nil.
type ProductFacts struct {
	Material    *string
	Size        *string
	Handmade    bool
	Origin      *string
	KeyFeatures *string
}

// MarketingCopy is a generated set of platform texts for one product.
type MarketingCopy struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	ProductName string
	Facts       ProductFacts
	Tone        string
	Platforms   []Platform
	Contents    map[string]string // canonical key -> text
	CreatedAt   time.Time
}
