package core

import (
	"context"
	"io"
	"time"

	"github.com/labstack/echo/v4"
)

type AuthService interface {
	IdentifyIdentity(next echo.HandlerFunc) echo.HandlerFunc
}

type SessionService interface {
	Verify(ctx context.Context, token string) (SessionClaims, error)
	Revoke(ctx context.Context, jti string, exp time.Time) error
}

type PinnedService interface {
	Get(ctx context.Context, slot string) (PinnedImage, error)
	Replace(ctx context.Context, image PinnedImage) (PinnedImage, error)
	Clear(ctx context.Context, slot string) error
}

type CarouselService interface {
	List(ctx context.Context) ([]CarouselImage, error)
	Create(ctx context.Context, image CarouselImage) (CarouselImage, error)
	Update(ctx context.Context, id string, patch CarouselPatch) (CarouselImage, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type InstagramService interface {
	List(ctx context.Context) ([]InstagramPost, error)
	Create(ctx context.Context, post InstagramPost) (InstagramPost, error)
	Update(ctx context.Context, id string, patch InstagramPatch) (InstagramPost, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type IntroService interface {
	List(ctx context.Context) ([]IntroSectionImage, error)
	Upsert(ctx context.Context, input IntroSectionUpsert) (IntroSectionImage, error)
	Delete(ctx context.Context, sectionKey string) error
}

type QuestionnaireService interface {
	List(ctx context.Context) ([]QuestionnaireLink, error)
	Get(ctx context.Context, doorIndex int) (QuestionnaireLink, error)
	Upsert(ctx context.Context, link QuestionnaireLink) (QuestionnaireLink, error)
}

type DoorService interface {
	Status(ctx context.Context, now time.Time) (DoorStatus, error)
}

type MessageService interface {
	List(ctx context.Context, includePrivate bool, limit int) ([]Message, error)
	Post(ctx context.Context, message Message, clientKey, captcha string) (Message, error)
	Delete(ctx context.Context, id string) error
	Export(ctx context.Context) ([]byte, error)
	Count(ctx context.Context) (int64, error)
}

type GalleryService interface {
	List(ctx context.Context, filter GalleryFilter) ([]GalleryImage, error)
	Create(ctx context.Context, image GalleryImage) (GalleryImage, error)
	Update(ctx context.Context, id string, patch GalleryPatch) (GalleryImage, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type UploadService interface {
	Upload(ctx context.Context, filename, contentType string, size int64, body io.Reader) (UploadResult, error)
}

type UserService interface {
	Get(ctx context.Context, id string) (User, error)
	SetUserID(ctx context.Context, claims SessionClaims, userID string) (User, error)
}

// SessionClaims are the verified claims of an identity provider session
type SessionClaims struct {
	Subject   string
	Role      string
	Name      string
	Email     string
	JTI       string
	ExpiresAt time.Time
}

type CarouselPatch struct {
	URL      *string `json:"url"`
	PublicID *string `json:"publicId"`
	Order    *int    `json:"order"`
}

// IntroSectionUpsert leaves publicId untouched when it is nil
type IntroSectionUpsert struct {
	SectionKey string  `json:"sectionKey"`
	URL        string  `json:"url"`
	PublicID   *string `json:"publicId"`
}

type InstagramPatch struct {
	URL   *string `json:"url"`
	Name  *string `json:"name"`
	Order *int    `json:"order"`
}

type GalleryPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
	Category    *string `json:"category"`
	Year        *int    `json:"year"`
	Date        *string `json:"date"`
	Order       *int    `json:"order"`
}
