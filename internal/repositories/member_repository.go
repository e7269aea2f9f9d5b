package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"gymdesk/internal/models/db_models"
	"gymdesk/pkg/utils"
)

type MemberRepository interface {
	Insert(ctx context.Context, member *db_models.Member) error
	FindByID(ctx context.Context, id int) (*db_models.Member, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Member, error)
	SearchByName(ctx context.Context, firstName, lastName string) (*db_models.Member, error)
	UpdateFitnessGoals(ctx context.Context, id int, goals string) error
	UpdateField(ctx context.Context, id int, column string, value string) error
	AddHealthMetric(ctx context.Context, metric *db_models.HealthMetric) error
	LatestHealthMetric(ctx context.Context, memberID int) (*db_models.HealthMetric, error)
}

type memberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) Insert(ctx context.Context, member *db_models.Member) error {
	err := r.db.WithContext(ctx).Create(member).Error
	if isUniqueViolation(err) {
		return utils.ErrEmailAlreadyExists
	}
	return err
}

func (r *memberRepository) FindByID(ctx context.Context, id int) (*db_models.Member, error) {
	var member db_models.Member
	err := r.db.WithContext(ctx).First(&member, "member_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) FindByEmail(ctx context.Context, email string) (*db_models.Member, error) {
	var member db_models.Member
	err := r.db.WithContext(ctx).First(&member, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) SearchByName(ctx context.Context, firstName, lastName string) (*db_models.Member, error) {
	var member db_models.Member
	err := r.db.WithContext(ctx).
		Where("first_name ILIKE ? OR last_name ILIKE ?", "%"+firstName+"%", "%"+lastName+"%").
		First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) UpdateFitnessGoals(ctx context.Context, id int, goals string) error {
	res := r.db.WithContext(ctx).
		Model(&db_models.Member{}).
		Where("member_id = ?", id).
		Update("fitness_goals", goals)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrMemberNotFound
	}
	return nil
}

func (r *memberRepository) UpdateField(ctx context.Context, id int, column string, value string) error {
	res := r.db.WithContext(ctx).
		Model(&db_models.Member{}).
		Where("member_id = ?", id).
		Update(column, value)
	if res.Error != nil {
		if isUniqueViolation(res.Error) {
			return utils.ErrEmailAlreadyExists
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrMemberNotFound
	}
	return nil
}

func (r *memberRepository) AddHealthMetric(ctx context.Context, metric *db_models.HealthMetric) error {
	return r.db.WithContext(ctx).Create(metric).Error
}

func (r *memberRepository) LatestHealthMetric(ctx context.Context, memberID int) (*db_models.HealthMetric, error) {
	var metric db_models.HealthMetric
	err := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("recorded_at DESC").
		First(&metric).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &metric, nil
}
