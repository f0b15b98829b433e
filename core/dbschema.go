package core

import (
	"time"

	"gorm.io/datatypes"
)

// PinnedImage is a singleton image slot (key visual, schedule)
// at most one row per slot
type PinnedImage struct {
	Slot      string    `json:"slot" gorm:"primaryKey;type:text"`
	URL       string    `json:"url" gorm:"type:text;not null"`
	PublicID  string    `json:"publicId" gorm:"type:text"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

// CarouselImage is one of the top page rotation images
type CarouselImage struct {
	ID        string    `json:"id" gorm:"primaryKey;type:char(20)"`
	URL       string    `json:"url" gorm:"type:text;not null"`
	PublicID  string    `json:"publicId" gorm:"type:text"`
	Order     int       `json:"order" gorm:"column:sort_order;type:integer;default:0;index"`
	CreatedAt time.Time `json:"createdAt" gorm:"->;<-:create;autoCreateTime"`
}

// InstagramPost is an embedded instagram post or reel
type InstagramPost struct {
	ID          string         `json:"id" gorm:"primaryKey;type:char(20)"`
	URL         string         `json:"url" gorm:"type:text;not null"`
	Name        *string        `json:"name" gorm:"type:text"`
	Description *string        `json:"description" gorm:"type:text"`
	Order       int            `json:"order" gorm:"column:sort_order;type:integer;default:0;index"`
	Metadata    datatypes.JSON `json:"metadata,omitempty" gorm:"type:jsonb"`
	CreatedAt   time.Time      `json:"createdAt" gorm:"->;<-:create;autoCreateTime"`
}

// IntroSectionImage is the image of one fixed intro section
type IntroSectionImage struct {
	SectionKey string    `json:"sectionKey" gorm:"primaryKey;type:text"`
	URL        string    `json:"url" gorm:"type:text;not null"`
	PublicID   string    `json:"publicId" gorm:"type:text"`
	UpdatedAt  time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

// QuestionnaireLink is the daily questionnaire url behind a door
type QuestionnaireLink struct {
	DoorIndex int       `json:"doorIndex" gorm:"primaryKey;autoIncrement:false"`
	URL       string    `json:"url" gorm:"type:text;not null"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

// Message is a message board post
// immutable
type Message struct {
	ID        string    `json:"id" gorm:"primaryKey;type:char(20)"`
	Content   string    `json:"content" gorm:"type:varchar(500);not null"`
	Author    *string   `json:"author" gorm:"type:text"`
	AuthorID  *string   `json:"-" gorm:"type:text;index"`
	IsPublic  bool      `json:"isPublic" gorm:"type:boolean;default:true;index"`
	CreatedAt time.Time `json:"createdAt" gorm:"->;<-:create;autoCreateTime;index"`
}

// User is the app-side extension of an identity provider account
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:text"`
	UserID    *string   `json:"userId" gorm:"type:varchar(32);uniqueIndex"`
	Name      string    `json:"name" gorm:"type:text"`
	Email     string    `json:"email" gorm:"type:text"`
	Role      string    `json:"role" gorm:"type:text"`
	CreatedAt time.Time `json:"createdAt" gorm:"->;<-:create;autoCreateTime"`
}
