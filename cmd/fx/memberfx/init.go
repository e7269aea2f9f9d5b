package memberfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"gymdesk/internal/repositories"
	"gymdesk/internal/services"
	"gymdesk/pkg/memcache"
)

var Module = fx.Provide(
	provideMemberRepo, provideMemberService)

func provideMemberRepo(db *gorm.DB) repositories.MemberRepository {
	return repositories.NewMemberRepository(db)
}

func provideMemberService(
	memberRepo repositories.MemberRepository,
	mail services.IMailService,
	tokens memcache.ResetTokenStore,
	log *zap.Logger,
) services.MemberServiceInterface {
	return services.NewMemberService(memberRepo, mail, tokens, log)
}
