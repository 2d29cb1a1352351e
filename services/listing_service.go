// services/listing_service.go
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"stayfinder-backend/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	activeFeedCacheKey = "stayfinder:listings:active"
	activeFeedCacheTTL = 30 * time.Second
)

// ListingService wraps *gorm.DB for listing reads and host-side CRUD.
// Cache is optional; nil disables it.
type ListingService struct {
	DB    *gorm.DB
	Cache *redis.Client
}

func NewListingService(db *gorm.DB, cache *redis.Client) *ListingService {
	return &ListingService{DB: db, Cache: cache}
}

// GetActiveSummaries returns every active listing as a card summary, with
// host first names resolved by a second, independent profiles query. A
// failed profile fetch is tolerated: the feed still renders, hosts show as
// "Host". The two calls are deliberately not transactional.
func (s *ListingService) GetActiveSummaries() ([]ListingSummary, error) {
	if cached, ok := s.cachedFeed(); ok {
		return cached, nil
	}

	var listings []models.Listing
	if err := s.DB.Where("is_active = ?", true).Find(&listings).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch listings: %w", err)
	}
	if len(listings) == 0 {
		return []ListingSummary{}, nil
	}

	hostIDs := make([]uint, 0, len(listings))
	seen := map[uint]bool{}
	for _, l := range listings {
		if !seen[l.HostID] {
			seen[l.HostID] = true
			hostIDs = append(hostIDs, l.HostID)
		}
	}

	firstNames := map[uint]string{}
	var hosts []models.Profile
	if err := s.DB.Where("id IN ?", hostIDs).Find(&hosts).Error; err != nil {
		log.Printf("warning: failed to fetch host profiles, continuing without: %v", err)
	} else {
		for _, h := range hosts {
			firstNames[h.ID] = h.FirstName
		}
	}

	out := make([]ListingSummary, 0, len(listings))
	for _, l := range listings {
		out = append(out, summarize(l, firstNames[l.HostID]))
	}

	s.storeFeed(out)
	return out, nil
}

// ListingDetail is the full detail-page view, host name resolved.
type ListingDetail struct {
	models.Listing
	AmenityList   []string `json:"amenity_list"`
	ImageURLs     []string `json:"image_urls"`
	HostFirstName string   `json:"host_first_name"`
	HostLastName  string   `json:"host_last_name"`
}

// GetListingDetail is a point lookup by id. A missing record returns the
// sentinel "listing_not_found" so the controller can answer 404 rather than
// a transient failure. The host profile is fetched in a separate call and
// its failure only degrades the host name.
func (s *ListingService) GetListingDetail(id uint) (*ListingDetail, error) {
	var listing models.Listing
	if err := s.DB.First(&listing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("listing_not_found")
		}
		return nil, fmt.Errorf("failed to fetch listing: %w", err)
	}

	detail := &ListingDetail{
		Listing:       listing,
		AmenityList:   listing.AmenityList(),
		ImageURLs:     listing.ImageList(),
		HostFirstName: "Host",
	}

	var host models.Profile
	if err := s.DB.First(&host, listing.HostID).Error; err != nil {
		log.Printf("warning: host profile %d not resolved: %v", listing.HostID, err)
	} else {
		if host.FirstName != "" {
			detail.HostFirstName = host.FirstName
		}
		detail.HostLastName = host.LastName
	}

	return detail, nil
}

// GetByHost returns the host's own listings, active or not, newest first.
func (s *ListingService) GetByHost(hostID uint) ([]models.Listing, error) {
	var listings []models.Listing
	if err := s.DB.
		Where("host_id = ?", hostID).
		Order("created_at DESC").
		Find(&listings).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch host listings: %w", err)
	}
	return listings, nil
}

// ListingInput is the create/update form payload.
type ListingInput struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	PropertyType  string   `json:"property_type"`
	City          string   `json:"city"`
	State         string   `json:"state"`
	Address       string   `json:"address"`
	PricePerNight float64  `json:"price_per_night"`
	MaxGuests     int      `json:"max_guests"`
	Bedrooms      int      `json:"bedrooms"`
	Bathrooms     int      `json:"bathrooms"`
	Amenities     []string `json:"amenities"`
	Images        []string `json:"images"`
}

func validateListingInput(in ListingInput) error {
	if in.Title == "" {
		return fmt.Errorf("validation: title is required")
	}
	if in.PropertyType == "" {
		return fmt.Errorf("validation: property type is required")
	}
	if in.City == "" || in.State == "" {
		return fmt.Errorf("validation: city and state are required")
	}
	if in.PricePerNight < 0 {
		return fmt.Errorf("validation: price per night must not be negative")
	}
	if in.MaxGuests < 1 {
		return fmt.Errorf("validation: max guests must be at least 1")
	}
	return nil
}

// Create inserts a new listing owned by hostID. Validation failures abort
// before any store call.
func (s *ListingService) Create(hostID uint, in ListingInput) (*models.Listing, error) {
	if err := validateListingInput(in); err != nil {
		return nil, err
	}
	if in.Bedrooms < 1 {
		in.Bedrooms = 1
	}
	if in.Bathrooms < 1 {
		in.Bathrooms = 1
	}

	listing := models.Listing{
		HostID:        hostID,
		Title:         in.Title,
		Description:   in.Description,
		PropertyType:  in.PropertyType,
		City:          in.City,
		State:         in.State,
		Address:       in.Address,
		PricePerNight: in.PricePerNight,
		MaxGuests:     in.MaxGuests,
		Bedrooms:      in.Bedrooms,
		Bathrooms:     in.Bathrooms,
		Amenities:     models.StringArray(in.Amenities),
		Images:        models.StringArray(in.Images),
		IsActive:      true,
	}

	if err := s.DB.Create(&listing).Error; err != nil {
		return nil, fmt.Errorf("failed to create listing: %w", err)
	}

	s.invalidateFeed()
	return &listing, nil
}

// Update rewrites a listing's descriptive fields. Only the owning host may
// mutate it; anyone else sees the same "listing_not_found" as a missing id.
func (s *ListingService) Update(hostID, listingID uint, in ListingInput) (*models.Listing, error) {
	if err := validateListingInput(in); err != nil {
		return nil, err
	}

	listing, err := s.ownedListing(hostID, listingID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"title":           in.Title,
		"description":     in.Description,
		"property_type":   in.PropertyType,
		"city":            in.City,
		"state":           in.State,
		"address":         in.Address,
		"price_per_night": in.PricePerNight,
		"max_guests":      in.MaxGuests,
		"bedrooms":        in.Bedrooms,
		"bathrooms":       in.Bathrooms,
		"amenities":       models.StringArray(in.Amenities),
		"images":          models.StringArray(in.Images),
	}
	if err := s.DB.Model(listing).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update listing: %w", err)
	}

	s.invalidateFeed()
	return listing, nil
}

// SetActive soft-deactivates (or reactivates) a listing via the active flag.
func (s *ListingService) SetActive(hostID, listingID uint, active bool) (*models.Listing, error) {
	listing, err := s.ownedListing(hostID, listingID)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Model(listing).Update("is_active", active).Error; err != nil {
		return nil, fmt.Errorf("failed to update listing: %w", err)
	}
	s.invalidateFeed()
	return listing, nil
}

// Delete hard-deletes an owned listing.
func (s *ListingService) Delete(hostID, listingID uint) error {
	listing, err := s.ownedListing(hostID, listingID)
	if err != nil {
		return err
	}
	if err := s.DB.Delete(listing).Error; err != nil {
		return fmt.Errorf("failed to delete listing: %w", err)
	}
	s.invalidateFeed()
	return nil
}

func (s *ListingService) ownedListing(hostID, listingID uint) (*models.Listing, error) {
	var listing models.Listing
	err := s.DB.Where("id = ? AND host_id = ?", listingID, hostID).First(&listing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("listing_not_found")
		}
		return nil, fmt.Errorf("failed to fetch listing: %w", err)
	}
	return &listing, nil
}

func summarize(l models.Listing, hostFirstName string) ListingSummary {
	if hostFirstName == "" {
		hostFirstName = "Host"
	}
	return ListingSummary{
		ID:            l.ID,
		Title:         l.Title,
		City:          l.City,
		State:         l.State,
		PropertyType:  l.PropertyType,
		PricePerNight: l.PricePerNight,
		Images:        l.ImageList(),
		HostFirstName: hostFirstName,
		CreatedAt:     l.CreatedAt,
	}
}

// Feed cache: best-effort, every failure degrades to a DB read.

func (s *ListingService) cachedFeed() ([]ListingSummary, bool) {
	if s.Cache == nil {
		return nil, false
	}
	raw, err := s.Cache.Get(context.Background(), activeFeedCacheKey).Bytes()
	if err != nil {
		return nil, false
	}
	var out []ListingSummary
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, false
	}
	return out, true
}

func (s *ListingService) storeFeed(feed []ListingSummary) {
	if s.Cache == nil {
		return
	}
	raw, err := json.Marshal(feed)
	if err != nil {
		return
	}
	if err := s.Cache.Set(context.Background(), activeFeedCacheKey, raw, activeFeedCacheTTL).Err(); err != nil {
		log.Printf("warning: listing feed cache write failed: %v", err)
	}
}

func (s *ListingService) invalidateFeed() {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(context.Background(), activeFeedCacheKey).Err(); err != nil {
		log.Printf("warning: listing feed cache invalidation failed: %v", err)
	}
}
