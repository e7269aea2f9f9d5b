package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"gymdesk/internal/models/db_models"
	"gymdesk/internal/models/request_models"
	"gymdesk/pkg/memcache"
	"gymdesk/pkg/utils"
)

func newMemberFixture() (*mockMemberRepo, *mockMailService, *memcache.ResetTokens, MemberServiceInterface) {
	memberRepo := new(mockMemberRepo)
	mail := new(mockMailService)
	tokens := memcache.NewResetTokens()
	svc := NewMemberService(memberRepo, mail, tokens, zap.NewNop())
	return memberRepo, mail, tokens, svc
}

func TestRegisterDuplicateEmail(t *testing.T) {
	memberRepo, _, _, svc := newMemberFixture()
	ctx := context.Background()

	memberRepo.On("FindByEmail", ctx, "ana@example.com").
		Return(&db_models.Member{MemberID: 1, Email: "ana@example.com"}, nil)

	_, err := svc.Register(ctx, request_models.RegisterMemberRequest{
		FirstName: "Ana", LastName: "Lopez", Email: "ana@example.com", Password: "secret1",
	})

	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
	memberRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestRegisterHashesPassword(t *testing.T) {
	memberRepo, _, _, svc := newMemberFixture()
	ctx := context.Background()

	memberRepo.On("FindByEmail", ctx, "ana@example.com").Return(nil, nil)
	memberRepo.On("Insert", ctx, mock.MatchedBy(func(m *db_models.Member) bool {
		return m.PasswordHash != "" && m.PasswordHash != "secret1"
	})).Return(nil)

	_, err := svc.Register(ctx, request_models.RegisterMemberRequest{
		FirstName: "Ana", LastName: "Lopez", Email: "ana@example.com", Password: "secret1",
	})

	assert.NoError(t, err)
	memberRepo.AssertExpectations(t)
}

func TestLoginWrongPassword(t *testing.T) {
	memberRepo, _, _, svc := newMemberFixture()
	ctx := context.Background()

	hash, err := utils.HashPassword("right-password")
	assert.NoError(t, err)
	memberRepo.On("FindByEmail", ctx, "ana@example.com").
		Return(&db_models.Member{MemberID: 1, Email: "ana@example.com", PasswordHash: hash}, nil)

	_, _, err = svc.Login(ctx, request_models.LoginRequest{
		Email: "ana@example.com", Password: "wrong-password",
	})

	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	memberRepo, _, _, svc := newMemberFixture()
	ctx := context.Background()

	memberRepo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, nil)

	_, _, err := svc.Login(ctx, request_models.LoginRequest{
		Email: "ghost@example.com", Password: "whatever",
	})

	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestUpdatePersonalInfoUnknownField(t *testing.T) {
	memberRepo, _, _, svc := newMemberFixture()

	err := svc.UpdatePersonalInfo(context.Background(), 1, request_models.UpdatePersonalInfoRequest{
		Field: "shoe_size", Value: "43",
	})

	assert.ErrorIs(t, err, utils.ErrUnknownField)
	memberRepo.AssertNotCalled(t, "UpdateField", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdatePersonalInfoPasswordIsHashed(t *testing.T) {
	memberRepo, _, _, svc := newMemberFixture()
	ctx := context.Background()

	memberRepo.On("UpdateField", ctx, 1, "password_hash", mock.MatchedBy(func(v string) bool {
		return v != "new-secret" && v != ""
	})).Return(nil)

	err := svc.UpdatePersonalInfo(ctx, 1, request_models.UpdatePersonalInfoRequest{
		Field: request_models.FieldPassword, Value: "new-secret",
	})

	assert.NoError(t, err)
	memberRepo.AssertExpectations(t)
}

func TestRequestPasswordResetUnknownEmailIsSilent(t *testing.T) {
	memberRepo, mail, _, svc := newMemberFixture()
	ctx := context.Background()

	memberRepo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, nil)

	err := svc.RequestPasswordReset(ctx, "ghost@example.com")

	assert.NoError(t, err)
	mail.AssertNotCalled(t, "SendPasswordReset", mock.Anything, mock.Anything)
}

func TestResetPasswordConsumesToken(t *testing.T) {
	memberRepo, _, tokens, svc := newMemberFixture()
	ctx := context.Background()

	tokens.Set("tok123", "ana@example.com", resetTokenTTL)
	memberRepo.On("FindByEmail", ctx, "ana@example.com").
		Return(&db_models.Member{MemberID: 1, Email: "ana@example.com"}, nil)
	memberRepo.On("UpdateField", ctx, 1, "password_hash", mock.Anything).Return(nil)

	assert.NoError(t, svc.ResetPassword(ctx, "tok123", "new-secret"))

	// Tokens are single use.
	err := svc.ResetPassword(ctx, "tok123", "another-secret")
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestAddHealthMetricUnknownMember(t *testing.T) {
	memberRepo, _, _, svc := newMemberFixture()
	ctx := context.Background()

	memberRepo.On("FindByID", ctx, 99).Return(nil, nil)

	err := svc.AddHealthMetric(ctx, 99, request_models.AddHealthMetricRequest{
		Weight: 80, Height: 180, Bodyfat: 18,
	})

	assert.ErrorIs(t, err, utils.ErrMemberNotFound)
	memberRepo.AssertNotCalled(t, "AddHealthMetric", mock.Anything, mock.Anything)
}
