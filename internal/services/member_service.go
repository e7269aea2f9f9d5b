package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"gymdesk/internal/models/db_models"
	"gymdesk/internal/models/request_models"
	"gymdesk/internal/models/response_models"
	"gymdesk/internal/repositories"
	"gymdesk/pkg/memcache"
	"gymdesk/pkg/utils"
)

const resetTokenTTL = 30 * time.Minute

type MemberServiceInterface interface {
	Register(ctx context.Context, req request_models.RegisterMemberRequest) (int, error)
	Login(ctx context.Context, req request_models.LoginRequest) (int, string, error)
	UpdateFitnessGoals(ctx context.Context, memberID int, goals string) error
	UpdatePersonalInfo(ctx context.Context, memberID int, req request_models.UpdatePersonalInfoRequest) error
	AddHealthMetric(ctx context.Context, memberID int, req request_models.AddHealthMetricRequest) error
	SearchByName(ctx context.Context, firstName, lastName string) (*response_models.MemberSummary, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type MemberService struct {
	memberRepo repositories.MemberRepository
	mail       IMailService
	tokens     memcache.ResetTokenStore
	log        *zap.Logger
}

func NewMemberService(
	memberRepo repositories.MemberRepository,
	mail IMailService,
	tokens memcache.ResetTokenStore,
	log *zap.Logger,
) MemberServiceInterface {
	return &MemberService{
		memberRepo: memberRepo,
		mail:       mail,
		tokens:     tokens,
		log:        log,
	}
}

func (s *MemberService) Register(ctx context.Context, req request_models.RegisterMemberRequest) (int, error) {
	existing, err := s.memberRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return 0, utils.ErrDatabaseError
	}
	if existing != nil {
		return 0, utils.ErrEmailAlreadyExists
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return 0, utils.ErrDatabaseError
	}

	member := &db_models.Member{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: hash,
		DateOfBirth:  req.DateOfBirth,
		Gender:       req.Gender,
		FitnessGoals: req.FitnessGoals,
	}
	if err := s.memberRepo.Insert(ctx, member); err != nil {
		return 0, err
	}

	s.log.Info("member registered", zap.Int("member_id", member.MemberID))
	return member.MemberID, nil
}

func (s *MemberService) Login(ctx context.Context, req request_models.LoginRequest) (int, string, error) {
	member, err := s.memberRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return 0, "", utils.ErrDatabaseError
	}
	if member == nil {
		return 0, "", utils.ErrInvalidCredentials
	}
	if err := utils.ComparePasswords(member.PasswordHash, req.Password); err != nil {
		return 0, "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(member.MemberID, utils.RoleMember)
	if err != nil {
		return 0, "", utils.ErrInvalidCredentials
	}
	return member.MemberID, token, nil
}

func (s *MemberService) UpdateFitnessGoals(ctx context.Context, memberID int, goals string) error {
	return s.memberRepo.UpdateFitnessGoals(ctx, memberID, goals)
}

func (s *MemberService) UpdatePersonalInfo(ctx context.Context, memberID int, req request_models.UpdatePersonalInfoRequest) error {
	value := req.Value

	var column string
	switch req.Field {
	case request_models.FieldFirstName:
		column = "first_name"
	case request_models.FieldLastName:
		column = "last_name"
	case request_models.FieldEmail:
		column = "email"
	case request_models.FieldPassword:
		hash, err := utils.HashPassword(req.Value)
		if err != nil {
			return utils.ErrDatabaseError
		}
		column, value = "password_hash", hash
	case request_models.FieldDateOfBirth:
		column = "date_of_birth"
	case request_models.FieldGender:
		column = "gender"
	default:
		return utils.ErrUnknownField
	}

	return s.memberRepo.UpdateField(ctx, memberID, column, value)
}

func (s *MemberService) AddHealthMetric(ctx context.Context, memberID int, req request_models.AddHealthMetricRequest) error {
	member, err := s.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if member == nil {
		return utils.ErrMemberNotFound
	}

	metric := &db_models.HealthMetric{
		MemberID: memberID,
		Weight:   req.Weight,
		Height:   req.Height,
		Bodyfat:  req.Bodyfat,
	}
	return s.memberRepo.AddHealthMetric(ctx, metric)
}

func (s *MemberService) SearchByName(ctx context.Context, firstName, lastName string) (*response_models.MemberSummary, error) {
	member, err := s.memberRepo.SearchByName(ctx, firstName, lastName)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if member == nil {
		return nil, utils.ErrMemberNotFound
	}

	summary := &response_models.MemberSummary{
		MemberID:     member.MemberID,
		FirstName:    member.FirstName,
		LastName:     member.LastName,
		Email:        member.Email,
		FitnessGoals: member.FitnessGoals,
	}

	metric, err := s.memberRepo.LatestHealthMetric(ctx, member.MemberID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if metric != nil {
		summary.LatestMetric = &response_models.MetricSummary{
			Weight:     metric.Weight,
			Height:     metric.Height,
			Bodyfat:    metric.Bodyfat,
			RecordedAt: metric.RecordedAt,
		}
	}
	return summary, nil
}

func (s *MemberService) RequestPasswordReset(ctx context.Context, email string) error {
	member, err := s.memberRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if member == nil {
		// Do not reveal whether the email is registered.
		return nil
	}

	token, err := utils.GenerateSecureToken(16)
	if err != nil {
		return utils.ErrDatabaseError
	}
	s.tokens.Set(token, member.Email, resetTokenTTL)

	return s.mail.SendPasswordReset(member.Email, token)
}

func (s *MemberService) ResetPassword(ctx context.Context, token, newPassword string) error {
	email := s.tokens.Consume(token)
	if email == "" {
		return utils.ErrInvalidCredentials
	}

	member, err := s.memberRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if member == nil {
		return utils.ErrMemberNotFound
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return utils.ErrDatabaseError
	}
	return s.memberRepo.UpdateField(ctx, member.MemberID, "password_hash", hash)
}
