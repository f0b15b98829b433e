//go:build wireinject

package campsite

import (
	"github.com/bradfitz/gomemcache/memcache"
	"github.com/google/wire"
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"

	"github.com/totegamma/campsite/core"

	"github.com/totegamma/campsite/x/auth"
	"github.com/totegamma/campsite/x/carousel"
	"github.com/totegamma/campsite/x/door"
	"github.com/totegamma/campsite/x/gallery"
	"github.com/totegamma/campsite/x/instagram"
	"github.com/totegamma/campsite/x/intro"
	"github.com/totegamma/campsite/x/message"
	"github.com/totegamma/campsite/x/pinned"
	"github.com/totegamma/campsite/x/questionnaire"
	"github.com/totegamma/campsite/x/session"
	"github.com/totegamma/campsite/x/upload"
	"github.com/totegamma/campsite/x/user"
)

// Lv0
var sessionServiceProvider = wire.NewSet(session.NewService, session.NewRepository)
var pinnedServiceProvider = wire.NewSet(pinned.NewService, pinned.NewRepository)
var carouselServiceProvider = wire.NewSet(carousel.NewService, carousel.NewRepository)
var instagramServiceProvider = wire.NewSet(instagram.NewService, instagram.NewRepository, instagram.NewEnricher)
var introServiceProvider = wire.NewSet(intro.NewService, intro.NewRepository)
var questionnaireServiceProvider = wire.NewSet(questionnaire.NewService, questionnaire.NewRepository)
var messageServiceProvider = wire.NewSet(message.NewService, message.NewRepository, message.NewLimiter, message.NewVerifier)
var galleryServiceProvider = wire.NewSet(gallery.NewService, gallery.NewRepository)
var uploadServiceProvider = wire.NewSet(upload.NewService, upload.NewRepository)
var userServiceProvider = wire.NewSet(user.NewService, user.NewRepository)

// Lv1
var authServiceProvider = wire.NewSet(auth.NewService, SetupSessionService)
var doorServiceProvider = wire.NewSet(door.NewService, SetupQuestionnaireService)

func SetupSessionService(rdb *redis.Client, config core.Config) core.SessionService {
	wire.Build(sessionServiceProvider)
	return nil
}

func SetupAuthService(rdb *redis.Client, config core.Config) core.AuthService {
	wire.Build(authServiceProvider)
	return nil
}

func SetupPinnedService(db *gorm.DB, mc *memcache.Client) core.PinnedService {
	wire.Build(pinnedServiceProvider)
	return nil
}

func SetupCarouselService(db *gorm.DB) core.CarouselService {
	wire.Build(carouselServiceProvider)
	return nil
}

func SetupInstagramService(db *gorm.DB, config core.Config) core.InstagramService {
	wire.Build(instagramServiceProvider)
	return nil
}

func SetupIntroService(db *gorm.DB) core.IntroService {
	wire.Build(introServiceProvider)
	return nil
}

func SetupQuestionnaireService(db *gorm.DB) core.QuestionnaireService {
	wire.Build(questionnaireServiceProvider)
	return nil
}

func SetupDoorService(db *gorm.DB, config core.Config) core.DoorService {
	wire.Build(doorServiceProvider)
	return nil
}

func SetupMessageService(db *gorm.DB, rdb *redis.Client, config core.Config) (core.MessageService, error) {
	wire.Build(messageServiceProvider)
	return nil, nil
}

func SetupGalleryService(db *mongo.Database) core.GalleryService {
	wire.Build(galleryServiceProvider)
	return nil
}

func SetupUploadService(client *minio.Client, config core.Config) core.UploadService {
	wire.Build(uploadServiceProvider)
	return nil
}

func SetupUserService(db *gorm.DB) core.UserService {
	wire.Build(userServiceProvider)
	return nil
}
